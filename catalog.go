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


package statespace

import (
	"context"
	"log/slog"

	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
	"github.com/poiesic/statespace/graph/badger"
	"github.com/poiesic/statespace/graph/memory"
	"github.com/poiesic/statespace/loader"
	"github.com/poiesic/statespace/search"
)

// Catalog owns a loaded movie graph.
type Catalog struct {
	config  Config
	store   graph.Store
	backend *badger.Backend
	report  loader.Report
	logger  *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger for the catalog and everything it creates.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		o.logger = logger
	}
}

// OpenCatalog opens the configured graph store and loads cfg.DataDir into
// it. A nil cfg uses DefaultConfig. With the badger backend and an empty
// DataDir, the store at BadgerPath is opened as is.
func OpenCatalog(ctx context.Context, cfg *Config, opts ...CatalogOption) (*Catalog, error) {
	options := &catalogOptions{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		config: *cfg,
		logger: logger,
	}

	switch cfg.Backend {
	case BackendBadger:
		backend, err := badger.OpenBackend(cfg.BadgerPath, cfg.BadgerPath == "")
		if err != nil {
			return nil, err
		}
		store, err := badger.NewStore(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		c.backend = backend
		c.store = store
	default:
		c.store = memory.NewStore()
	}

	if cfg.DataDir == "" {
		logger.Info("using existing graph store", "path", cfg.BadgerPath)
		return c, nil
	}

	report, err := loader.Load(ctx, cfg.DataDir, c.store,
		loader.WithLogger(logger),
		loader.WithBatchSize(cfg.BatchSize))
	if err != nil {
		c.Close()
		return nil, err
	}
	c.report = report

	return c, nil
}

// Close releases the graph store and its backend.
func (c *Catalog) Close() error {
	if err := c.store.Close(); err != nil {
		c.logger.Error("error closing graph store", "err", err)
		return err
	}

	if c.backend != nil {
		if err := c.backend.Close(); err != nil {
			c.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

// Graph returns the loaded graph.
func (c *Catalog) Graph() graph.Graph {
	return c.store
}

// Report returns what the load read and skipped. It is zero when an
// existing store was opened without loading.
func (c *Catalog) Report() loader.Report {
	return c.report
}

// PeopleNamed returns every person with the given name, ignoring case,
// ordered by ID. Nobody matching yields an empty slice.
func (c *Catalog) PeopleNamed(ctx context.Context, name string) ([]*core.Person, error) {
	ids, err := c.store.PeopleNamed(ctx, name)
	if err != nil {
		return nil, err
	}

	people := make([]*core.Person, 0, len(ids))
	for _, id := range ids {
		person, err := c.store.Person(ctx, id)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}
	return people, nil
}

// NewPathFinder creates a path finder over the catalog's graph, configured
// from the catalog's Config. opts are applied after the configured ones.
func (c *Catalog) NewPathFinder(opts ...search.Option) (*search.PathFinder, error) {
	base := []search.Option{
		search.WithLogger(c.logger),
		search.WithCacheSize(c.config.CacheSize),
	}
	if c.config.PoolSize > 0 {
		base = append(base, search.WithPoolSize(c.config.PoolSize))
	}
	return search.NewPathFinder(c.store, append(base, opts...)...)
}
