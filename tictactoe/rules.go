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

import "fmt"

// lines lists every three-in-a-row: rows, then columns, then diagonals.
var lines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// Player returns the mark that moves next. X moves whenever the counts are
// equal; O moves when X is ahead. Boards where O is ahead are malformed and
// report X.
func Player(b Board) Mark {
	x, o := b.Counts()
	if x > o {
		return O
	}
	return X
}

// Actions returns every empty cell in row-major order. A full board yields
// an empty slice.
func Actions(b Board) []Action {
	actions := make([]Action, 0, Size*Size)
	for r, row := range b {
		for c, cell := range row {
			if cell == Empty {
				actions = append(actions, Action{Row: r, Col: c})
			}
		}
	}
	return actions
}

// Result returns the board after the current player plays a. The input
// board is not modified.
//
// Moves outside the board, onto an occupied cell, or on a finished game
// fail with ErrInvalidAction.
func Result(b Board, a Action) (Board, error) {
	if !a.InBounds() {
		return b, fmt.Errorf("%w: %v is off the board", ErrInvalidAction, a)
	}
	if b[a.Row][a.Col] != Empty {
		return b, fmt.Errorf("%w: %v is taken by %v", ErrInvalidAction, a, b[a.Row][a.Col])
	}
	if Terminal(b) {
		return b, fmt.Errorf("%w: game is over", ErrInvalidAction)
	}

	next := b
	next[a.Row][a.Col] = Player(b)
	return next, nil
}

// Winner returns the mark holding a full line, or Empty if nobody does.
// If several lines are complete the first in row, column, diagonal order
// wins.
func Winner(b Board) Mark {
	for _, line := range lines {
		m := b[line[0].Row][line[0].Col]
		if m == Empty {
			continue
		}
		if b[line[1].Row][line[1].Col] == m && b[line[2].Row][line[2].Col] == m {
			return m
		}
	}
	return Empty
}

// Terminal reports whether the game is over: someone has won or the board
// is full.
func Terminal(b Board) bool {
	if Winner(b) != Empty {
		return true
	}
	for _, row := range b {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// Utility scores b for X: 1 if X has won, -1 if O has won, 0 otherwise.
// It is only meaningful on terminal boards.
func Utility(b Board) int {
	switch Winner(b) {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}
