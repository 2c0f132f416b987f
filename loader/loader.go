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


package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
)

// Dataset file names.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

const defaultBatchSize = 1000

// Report summarizes a load.
type Report struct {
	People        int
	Movies        int
	Stars         int
	SkippedPeople int
	SkippedMovies int
	SkippedStars  int
}

// Loader reads dataset directories into a graph builder.
type Loader struct {
	builder   graph.Builder
	batchSize int
	logger    *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithBatchSize sets how many records are handed to the builder at once.
// Default is 1000, with a minimum of 1.
func WithBatchSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		l.batchSize = size
		return nil
	}
}

// New creates a loader that writes into builder.
func New(builder graph.Builder, opts ...Option) (*Loader, error) {
	if builder == nil {
		return nil, ErrBuilderRequired
	}

	l := &Loader{
		builder:   builder,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Load reads the dataset in dir into builder.
func Load(ctx context.Context, dir string, builder graph.Builder, opts ...Option) (Report, error) {
	l, err := New(builder, opts...)
	if err != nil {
		return Report{}, err
	}
	return l.Load(ctx, dir)
}

// Load reads people, then movies, then stars from dir.
func (l *Loader) Load(ctx context.Context, dir string) (Report, error) {
	var report Report

	l.logger.Debug("loading dataset", "dir", dir)

	if err := l.loadPeople(ctx, filepath.Join(dir, PeopleFile), &report); err != nil {
		return report, err
	}
	if err := l.loadMovies(ctx, filepath.Join(dir, MoviesFile), &report); err != nil {
		return report, err
	}
	if err := l.loadStars(ctx, filepath.Join(dir, StarsFile), &report); err != nil {
		return report, err
	}

	l.logger.Info("dataset loaded",
		"dir", dir,
		"people", report.People,
		"movies", report.Movies,
		"stars", report.Stars,
		"skipped_people", report.SkippedPeople,
		"skipped_movies", report.SkippedMovies,
		"skipped_stars", report.SkippedStars)

	return report, nil
}

func (l *Loader) loadPeople(ctx context.Context, path string, report *Report) error {
	batch := make([]*core.Person, 0, l.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := l.builder.AddPeople(ctx, batch...); err != nil {
			return fmt.Errorf("adding people: %w", err)
		}
		report.People += len(batch)
		batch = batch[:0]
		return nil
	}

	err := readCSV(ctx, path, []string{"id", "name", "birth"}, func(line int, fields []string) error {
		row := personRow{ID: fields[0], Name: fields[1], Birth: fields[2]}
		person, err := row.person()
		if err != nil {
			l.logger.Warn("skipping person", "file", path, "line", line, "err", err)
			report.SkippedPeople++
			return nil
		}
		batch = append(batch, person)
		if len(batch) >= l.batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}

func (l *Loader) loadMovies(ctx context.Context, path string, report *Report) error {
	batch := make([]*core.Movie, 0, l.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := l.builder.AddMovies(ctx, batch...); err != nil {
			return fmt.Errorf("adding movies: %w", err)
		}
		report.Movies += len(batch)
		batch = batch[:0]
		return nil
	}

	err := readCSV(ctx, path, []string{"id", "title", "year"}, func(line int, fields []string) error {
		row := movieRow{ID: fields[0], Title: fields[1], Year: fields[2]}
		movie, err := row.movie()
		if err != nil {
			l.logger.Warn("skipping movie", "file", path, "line", line, "err", err)
			report.SkippedMovies++
			return nil
		}
		batch = append(batch, movie)
		if len(batch) >= l.batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}

func (l *Loader) loadStars(ctx context.Context, path string, report *Report) error {
	batch := make([]core.Star, 0, l.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		skipped, err := l.builder.AddStars(ctx, batch...)
		if err != nil {
			return fmt.Errorf("adding stars: %w", err)
		}
		for _, s := range skipped {
			l.logger.Debug("skipping star with unknown person or movie", "person", s.Person, "movie", s.Movie)
		}
		report.Stars += len(batch) - len(skipped)
		report.SkippedStars += len(skipped)
		batch = batch[:0]
		return nil
	}

	err := readCSV(ctx, path, []string{"person_id", "movie_id"}, func(line int, fields []string) error {
		row := starRow{PersonID: fields[0], MovieID: fields[1]}
		star, err := row.star()
		if err != nil {
			l.logger.Warn("skipping star", "file", path, "line", line, "err", err)
			report.SkippedStars++
			return nil
		}
		batch = append(batch, star)
		if len(batch) >= l.batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}

// readCSV calls fn with the named columns of every record in path, in the
// order given by columns. Short records are padded with empty strings.
func readCSV(ctx context.Context, path string, columns []string, fn func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("%w: %s is empty", ErrMissingColumn, filepath.Base(path))
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	positions := make([]int, len(columns))
	for i, col := range columns {
		pos, ok := index[col]
		if !ok {
			return fmt.Errorf("%w: %s in %s", ErrMissingColumn, col, filepath.Base(path))
		}
		positions[i] = pos
	}

	fields := make([]string, len(columns))
	for n := 0; ; n++ {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
		}

		for i, pos := range positions {
			if pos < len(record) {
				fields[i] = strings.TrimSpace(record[pos])
			} else {
				fields[i] = ""
			}
		}

		line, _ := r.FieldPos(0)
		if err := fn(line, fields); err != nil {
			return err
		}
	}
}
