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
	"fmt"
	"strings"
)

// Graph store backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Config holds configuration for a Catalog.
type Config struct {
	// DataDir is the directory holding people.csv, movies.csv and stars.csv.
	// May be empty only when BadgerPath names a store loaded earlier.
	// Default: "large"
	DataDir string

	// Backend selects the graph store: "memory" or "badger".
	// Default: "memory"
	Backend string

	// BadgerPath is where the badger backend keeps its files.
	// Empty runs badger in memory. Ignored by the memory backend.
	BadgerPath string

	// CacheSize is the number of answered path queries to remember.
	// Zero disables the cache.
	// Default: 128
	CacheSize int

	// PoolSize is the worker count for batch path queries.
	// Zero uses one worker per CPU.
	PoolSize int

	// BatchSize is how many CSV records are written to the store at once.
	// Default: 1000
	BatchSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDataDir sets the dataset directory.
func WithDataDir(dir string) ConfigOption {
	return func(c *Config) {
		c.DataDir = dir
	}
}

// WithBackend sets the graph store backend.
func WithBackend(backend string) ConfigOption {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithBadgerPath sets the on-disk location of the badger backend.
func WithBadgerPath(path string) ConfigOption {
	return func(c *Config) {
		c.BadgerPath = path
	}
}

// WithCacheSize sets the path cache size.
func WithCacheSize(size int) ConfigOption {
	return func(c *Config) {
		c.CacheSize = size
	}
}

// WithPoolSize sets the batch query worker count.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithBatchSize sets the load batch size.
func WithBatchSize(size int) ConfigOption {
	return func(c *Config) {
		c.BatchSize = size
	}
}

// DefaultConfig returns a Config that loads the "large" dataset into memory.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   "large",
		Backend:   BackendMemory,
		CacheSize: 128,
		BatchSize: 1000,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithDataDir("small"),
//	    WithBackend(BackendBadger),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the configuration in canonical form.
func (c *Config) Normalize() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.BadgerPath = strings.TrimSpace(c.BadgerPath)
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Backend {
	case BackendMemory:
		if c.DataDir == "" {
			return fmt.Errorf("%w: DataDir is required", ErrInvalidConfig)
		}
	case BackendBadger:
		if c.DataDir == "" && c.BadgerPath == "" {
			return fmt.Errorf("%w: DataDir or BadgerPath is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: CacheSize must not be negative", ErrInvalidConfig)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: PoolSize must not be negative", ErrInvalidConfig)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: BatchSize must be at least 1", ErrInvalidConfig)
	}
	return nil
}
