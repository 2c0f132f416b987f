package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/statespace"
	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
	"github.com/poiesic/statespace/search"
	"github.com/urfave/cli/v2"
)

var errAmbiguousName = errors.New("ambiguous name")

func interactiveCommand(c *cli.Context) error {
	if c.NArg() > 1 {
		return errUsage
	}
	ctx := c.Context
	w := c.App.Writer

	fmt.Fprintln(w, "Loading data...")
	cat, err := openCatalog(c, c.Args().First())
	if err != nil {
		return err
	}
	defer cat.Close()
	fmt.Fprintln(w, "Data loaded.")

	p := newPrompter(c.App.Reader, w)
	source, err := p.personID(ctx, cat)
	if err != nil {
		return err
	}
	target, err := p.personID(ctx, cat)
	if err != nil {
		return err
	}

	finder, err := cat.NewPathFinder()
	if err != nil {
		return err
	}
	path, found, err := finder.ShortestPath(ctx, source, target)
	if err != nil {
		return err
	}
	return printPath(ctx, w, cat.Graph(), source, path, found)
}

func pathCommand(c *cli.Context) error {
	ctx := c.Context

	cat, err := openCatalog(c, "")
	if err != nil {
		return err
	}
	defer cat.Close()

	source, err := resolvePerson(ctx, cat, c.String("from"))
	if err != nil {
		return err
	}
	target, err := resolvePerson(ctx, cat, c.String("to"))
	if err != nil {
		return err
	}

	finder, err := cat.NewPathFinder()
	if err != nil {
		return err
	}
	path, found, err := finder.ShortestPath(ctx, source, target)
	if err != nil {
		return err
	}
	return printPath(ctx, c.App.Writer, cat.Graph(), source, path, found)
}

func batchCommand(c *cli.Context) error {
	ctx := c.Context

	queries, err := readPairs(c.String("pairs"))
	if err != nil {
		return err
	}

	cat, err := openCatalog(c, "")
	if err != nil {
		return err
	}
	defer cat.Close()

	var opts []search.Option
	if c.Bool("progress") {
		opts = append(opts, search.WithProgress(c.App.ErrWriter, max(1, len(queries)/100)))
	}
	finder, err := cat.NewPathFinder(opts...)
	if err != nil {
		return err
	}
	results, err := finder.ShortestPaths(ctx, queries)
	if err != nil {
		return err
	}

	for _, r := range results {
		printResult(c.App.Writer, r)
	}
	return nil
}

// resolvePerson accepts a person ID or a name. A name shared by several
// people is an error listing their IDs.
func resolvePerson(ctx context.Context, cat *statespace.Catalog, query string) (core.PersonID, error) {
	query = strings.TrimSpace(query)

	_, err := cat.Graph().Person(ctx, core.PersonID(query))
	if err == nil {
		return core.PersonID(query), nil
	}
	if !errors.Is(err, graph.ErrNotFound) {
		return "", err
	}

	people, err := cat.PeopleNamed(ctx, query)
	if err != nil {
		return "", err
	}
	switch len(people) {
	case 0:
		return "", fmt.Errorf("%w: %s", errPersonNotFound, query)
	case 1:
		return people[0].ID, nil
	}

	ids := make([]string, len(people))
	for i, person := range people {
		ids[i] = string(person.ID)
	}
	return "", fmt.Errorf("%w: %q matches IDs %s", errAmbiguousName, query, strings.Join(ids, ", "))
}

// readPairs reads source,target person ID pairs from a CSV file with a
// header row.
func readPairs(path string) ([]search.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	source, target := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "source":
			source = i
		case "target":
			target = i
		}
	}
	if source < 0 || target < 0 {
		return nil, fmt.Errorf("%s: header must name source and target columns", path)
	}

	var queries []search.Query
	for {
		record, err := r.Read()
		if err == io.EOF {
			return queries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		queries = append(queries, search.Query{
			Source: core.PersonID(strings.TrimSpace(record[source])),
			Target: core.PersonID(strings.TrimSpace(record[target])),
		})
	}
}
