package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/poiesic/statespace/tictactoe"
)

var styles = struct {
	X       lipgloss.Style
	O       lipgloss.Style
	Empty   lipgloss.Style
	Grid    lipgloss.Style
	Board   lipgloss.Style
	Outcome lipgloss.Style
	Error   lipgloss.Style
}{
	X:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
	O:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F")),
	Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Grid:    lipgloss.NewStyle().Foreground(lipgloss.Color("#16858E")),
	Board:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#16858E")).Padding(0, 1),
	Outcome: lipgloss.NewStyle().Bold(true),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
}

// renderBoard draws b as a 3x3 grid inside a rounded box.
func renderBoard(b tictactoe.Board) string {
	rows := make([]string, 0, 2*tictactoe.Size-1)
	for r, row := range b {
		if r > 0 {
			rows = append(rows, styles.Grid.Render("---+---+---"))
		}
		cells := make([]string, len(row))
		for c, m := range row {
			cells[c] = " " + renderMark(m) + " "
		}
		rows = append(rows, strings.Join(cells, styles.Grid.Render("|")))
	}
	return styles.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderMark(m tictactoe.Mark) string {
	switch m {
	case tictactoe.X:
		return styles.X.Render("X")
	case tictactoe.O:
		return styles.O.Render("O")
	default:
		return styles.Empty.Render(".")
	}
}

// renderOutcome describes how a finished game ended.
func renderOutcome(b tictactoe.Board) string {
	if !tictactoe.Terminal(b) {
		return styles.Outcome.Render("Game in progress.")
	}
	if w := tictactoe.Winner(b); w != tictactoe.Empty {
		return styles.Outcome.Render(fmt.Sprintf("Game Over: %v wins.", w))
	}
	return styles.Outcome.Render("Game Over: Tie.")
}
