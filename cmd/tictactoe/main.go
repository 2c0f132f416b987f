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


package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/statespace/tictactoe"
	"github.com/urfave/cli/v2"
)

var errBadMove = errors.New("enter a move as two numbers: row col")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "tictactoe",
		Usage: "Play tic-tac-toe against a perfect opponent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"TICTACTOE_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Play a game against the computer; moves are entered as \"row col\" from 0 to 2",
				Action: playCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "as",
						Usage: "Mark to play (X moves first)",
						Value: "X",
					},
				},
			},
			{
				Name:   "best",
				Usage:  "Print the optimal move for a position",
				Action: bestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "board",
						Aliases:  []string{"b"},
						Usage:    "Board as rows separated by slashes, e.g. \"X.O/.X./...\"",
						Required: true,
					},
				},
			},
			{
				Name:   "selfplay",
				Usage:  "Let the computer play both sides",
				Action: selfplayCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "board",
						Aliases: []string{"b"},
						Usage:   "Starting position",
						Value:   tictactoe.InitialState().String(),
					},
				},
			},
		},
	}
}

func playCommand(c *cli.Context) error {
	human, err := parseMark(c.String("as"))
	if err != nil {
		return err
	}
	w := c.App.Writer
	in := bufio.NewScanner(c.App.Reader)

	board := tictactoe.InitialState()
	fmt.Fprintf(w, "You are %v.\n", human)
	for !tictactoe.Terminal(board) {
		fmt.Fprintln(w, renderBoard(board))

		var action tictactoe.Action
		if tictactoe.Player(board) == human {
			action, err = readMove(w, in)
			if err != nil {
				return err
			}
		} else {
			var ok bool
			action, ok = tictactoe.Minimax(board)
			if !ok {
				break
			}
			slog.Debug("computer move", "board", board.String(), "action", action)
			fmt.Fprintf(w, "Computer plays %v.\n", action)
		}

		next, err := tictactoe.Result(board, action)
		if err != nil {
			fmt.Fprintln(w, styles.Error.Render(err.Error()))
			continue
		}
		board = next
	}

	fmt.Fprintln(w, renderBoard(board))
	fmt.Fprintln(w, renderOutcome(board))
	return nil
}

func bestCommand(c *cli.Context) error {
	board, err := tictactoe.ParseBoard(c.String("board"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintln(w, renderBoard(board))

	action, ok := tictactoe.Minimax(board)
	if !ok {
		fmt.Fprintln(w, "No move: game is over.")
		fmt.Fprintln(w, renderOutcome(board))
		return nil
	}
	fmt.Fprintf(w, "Best move for %v: %v\n", tictactoe.Player(board), action)
	fmt.Fprintf(w, "Value: %d\n", tictactoe.Value(board))
	return nil
}

func selfplayCommand(c *cli.Context) error {
	board, err := tictactoe.ParseBoard(c.String("board"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintln(w, renderBoard(board))
	for {
		action, ok := tictactoe.Minimax(board)
		if !ok {
			break
		}
		player := tictactoe.Player(board)
		board, err = tictactoe.Result(board, action)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v plays %v.\n", player, action)
		fmt.Fprintln(w, renderBoard(board))
	}

	fmt.Fprintln(w, renderOutcome(board))
	return nil
}

func parseMark(s string) (tictactoe.Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return tictactoe.X, nil
	case "O":
		return tictactoe.O, nil
	default:
		return tictactoe.Empty, fmt.Errorf("invalid mark %q: must be X or O", s)
	}
}

// readMove prompts until the player enters two integers. Whether the cell
// is playable is left to tictactoe.Result.
func readMove(w io.Writer, in *bufio.Scanner) (tictactoe.Action, error) {
	for {
		fmt.Fprint(w, "Your move (row col): ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return tictactoe.Action{}, err
			}
			return tictactoe.Action{}, io.ErrUnexpectedEOF
		}

		action, err := parseMove(in.Text())
		if err != nil {
			fmt.Fprintln(w, styles.Error.Render(err.Error()))
			continue
		}
		return action, nil
	}
}

func parseMove(s string) (tictactoe.Action, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return tictactoe.Action{}, errBadMove
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return tictactoe.Action{}, errBadMove
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return tictactoe.Action{}, errBadMove
	}
	return tictactoe.Action{Row: row, Col: col}, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
