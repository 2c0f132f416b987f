// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package tictactoe

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 3

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O", or "." for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a 3x3 grid indexed [row][col].
type Board [Size][Size]Mark

// Action is a move into the cell at (Row, Col).
type Action struct {
	Row int
	Col int
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.Row, a.Col)
}

// InBounds reports whether a names a cell on the board.
func (a Action) InBounds() bool {
	return a.Row >= 0 && a.Row < Size && a.Col >= 0 && a.Col < Size
}

// Counts returns how many cells hold X and O.
func (b Board) Counts() (x, o int) {
	for _, row := range b {
		for _, cell := range row {
			switch cell {
			case X:
				x++
			case O:
				o++
			}
		}
	}
	return x, o
}

// Validate checks that b could occur in a game started by X: X leads O by
// zero or one marks.
func (b Board) Validate() error {
	for r, row := range b {
		for c, cell := range row {
			if cell > O {
				return fmt.Errorf("%w: unknown mark %d at %v", ErrInvalidBoard, cell, Action{r, c})
			}
		}
	}
	x, o := b.Counts()
	if x-o < 0 || x-o > 1 {
		return fmt.Errorf("%w: %d X and %d O", ErrInvalidBoard, x, o)
	}
	return nil
}

// String renders b in the compact form accepted by ParseBoard, rows
// separated by slashes, e.g. "X.O/.X./..O".
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// ParseBoard reads a board written row by row. X and O (either case) are
// marks; '.', '-' and '_' are empty cells. Slashes, pipes, commas and
// whitespace are ignored, so "X.O/.X./..O" and "x . o\n. x .\n. . o" are
// the same board. The result is checked with Validate.
func ParseBoard(s string) (Board, error) {
	var b Board
	n := 0
	for _, ch := range s {
		var m Mark
		switch ch {
		case '/', '|', ',', ' ', '\t', '\n', '\r':
			continue
		case 'X', 'x':
			m = X
		case 'O', 'o':
			m = O
		case '.', '-', '_':
			m = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidBoard, ch)
		}
		if n >= Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, Size*Size)
		}
		b[n/Size][n%Size] = m
		n++
	}
	if n != Size*Size {
		return Board{}, fmt.Errorf("%w: %d cells, want %d", ErrInvalidBoard, n, Size*Size)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}
