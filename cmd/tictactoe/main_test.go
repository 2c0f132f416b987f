package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/poiesic/statespace/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"tictactoe"}, args...))
	return out.String(), err
}

func TestBestCommand(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  []string
	}{
		{
			name:  "winning move",
			board: "XX./OO./...",
			want:  []string{"Best move for X: (0, 2)", "Value: 1"},
		},
		{
			name:  "blocking move",
			board: ".../.O./XX.",
			want:  []string{"Best move for O: (2, 2)", "Value: 0"},
		},
		{
			name:  "finished game",
			board: "XXX/OO./...",
			want:  []string{"No move: game is over.", "Game Over: X wins."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", "best", "--board", tt.board)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}

	t.Run("invalid board", func(t *testing.T) {
		_, err := run(t, "", "best", "--board", "OO./.../...")
		assert.ErrorIs(t, err, tictactoe.ErrInvalidBoard)
	})
}

func TestSelfplayCommand(t *testing.T) {
	out, err := run(t, "", "selfplay")
	require.NoError(t, err)
	assert.Contains(t, out, "X plays (0, 0).")
	assert.Equal(t, 5, strings.Count(out, "X plays"))
	assert.Equal(t, 4, strings.Count(out, "O plays"))
	assert.Contains(t, out, "Game Over: Tie.")
}

func TestPlayCommand(t *testing.T) {
	t.Run("computer punishes a wasted move", func(t *testing.T) {
		// O takes the centre, blocks twice, then completes the middle row
		// while X plays elsewhere.
		out, err := run(t, "0 0\n0 1\n2 0\n2 2\n", "play")
		require.NoError(t, err)
		assert.Contains(t, out, "You are X.")
		assert.Contains(t, out, "Computer plays (1, 1).")
		assert.Contains(t, out, "Computer plays (0, 2).")
		assert.Contains(t, out, "Computer plays (1, 0).")
		assert.Contains(t, out, "Computer plays (1, 2).")
		assert.Contains(t, out, "Game Over: O wins.")
	})

	t.Run("bad input is retried", func(t *testing.T) {
		out, err := run(t, "nonsense\n9 9\n0 0\n", "play")
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Contains(t, out, errBadMove.Error())
		assert.Contains(t, out, "invalid action")
		assert.Contains(t, out, "Computer plays")
	})

	t.Run("computer moves first when human is O", func(t *testing.T) {
		out, err := run(t, "", "play", "--as", "o")
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Contains(t, out, "You are O.")
		assert.Contains(t, out, "Computer plays (0, 0).")
	})

	t.Run("invalid mark", func(t *testing.T) {
		_, err := run(t, "", "play", "--as", "Z")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid mark")
	})
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    tictactoe.Action
		wantErr bool
	}{
		{input: "0 0", want: tictactoe.Action{Row: 0, Col: 0}},
		{input: "2,1", want: tictactoe.Action{Row: 2, Col: 1}},
		{input: "  1 \t 2 ", want: tictactoe.Action{Row: 1, Col: 2}},
		{input: "1", wantErr: true},
		{input: "1 2 3", wantErr: true},
		{input: "a b", wantErr: true},
		{input: "1 b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseMove(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadMove)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadMove_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := readMove(&out, bufio.NewScanner(strings.NewReader("")))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, out.String(), "Your move (row col): ")
}

func TestRenderOutcome(t *testing.T) {
	assert.Contains(t, renderOutcome(tictactoe.InitialState()), "Game in progress.")
	assert.Contains(t, renderOutcome(tictactoe.Board{{tictactoe.O, tictactoe.O, tictactoe.O}, {tictactoe.X, tictactoe.X}, {tictactoe.X}}), "Game Over: O wins.")
	assert.Contains(t, renderOutcome(tictactoe.Board{
		{tictactoe.X, tictactoe.O, tictactoe.X},
		{tictactoe.X, tictactoe.O, tictactoe.O},
		{tictactoe.O, tictactoe.X, tictactoe.X},
	}), "Game Over: Tie.")
}

func TestRenderBoard(t *testing.T) {
	out := renderBoard(tictactoe.Board{{tictactoe.X}, {}, {tictactoe.Empty, tictactoe.Empty, tictactoe.O}})
	assert.Equal(t, 1, strings.Count(out, "X"))
	assert.Equal(t, 1, strings.Count(out, "O"))
	assert.Equal(t, 7, strings.Count(out, "."))
	assert.Equal(t, 2, strings.Count(out, "---+---+---"))
}
