package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
	"github.com/poiesic/statespace/search"
)

var styles = struct {
	Summary lipgloss.Style
	Step    lipgloss.Style
	Missing lipgloss.Style
	Error   lipgloss.Style
}{
	Summary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
	Step:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	Missing: lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
}

// printPath writes the degrees of separation and one line per hop, or
// "Not connected." when there is no path.
func printPath(ctx context.Context, w io.Writer, g graph.Graph, source core.PersonID, path core.Path, found bool) error {
	if !found {
		fmt.Fprintln(w, styles.Missing.Render("Not connected."))
		return nil
	}

	fmt.Fprintln(w, styles.Summary.Render(fmt.Sprintf("%d degrees of separation.", path.Degrees())))

	prev, err := g.Person(ctx, source)
	if err != nil {
		return err
	}
	for i, step := range path {
		next, err := g.Person(ctx, step.Person)
		if err != nil {
			return err
		}
		movie, err := g.Movie(ctx, step.Movie)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%d: %s and %s starred in %s", i+1, prev.Name, next.Name, movie.Title)
		fmt.Fprintln(w, styles.Step.Render(line))
		prev = next
	}
	return nil
}

// printResult writes one line for a batch query.
func printResult(w io.Writer, r search.Result) {
	prefix := fmt.Sprintf("%s -> %s: ", r.Query.Source, r.Query.Target)
	switch {
	case r.Err != nil:
		fmt.Fprintln(w, styles.Error.Render(prefix+r.Err.Error()))
	case !r.Found:
		fmt.Fprintln(w, styles.Missing.Render(prefix+"not connected"))
	default:
		fmt.Fprintln(w, styles.Step.Render(prefix+strconv.Itoa(r.Path.Degrees())+" degrees"))
	}
}

func birthString(birth int) string {
	if birth == 0 {
		return ""
	}
	return strconv.Itoa(birth)
}
