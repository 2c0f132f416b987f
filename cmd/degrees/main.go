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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/statespace"
	"github.com/urfave/cli/v2"
)

var (
	errPersonNotFound = errors.New("person not found")
	errUsage          = errors.New("usage: degrees [directory]")
)

func main() {
	// A missing .env file is fine; flags fall back to the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "err", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "degrees",
		Usage:     "Find the degrees of separation between two actors",
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"DEGREES_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Dataset directory holding people.csv, movies.csv and stars.csv",
				Value:   statespace.DefaultConfig().DataDir,
				EnvVars: []string{"DEGREES_DATA"},
			},
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "Graph store backend (memory, badger)",
				Value:   statespace.BackendMemory,
				EnvVars: []string{"DEGREES_BACKEND"},
			},
			&cli.StringFlag{
				Name:    "badger-path",
				Usage:   "Directory for the badger backend; empty keeps it in memory",
				EnvVars: []string{"DEGREES_BADGER_PATH"},
			},
			&cli.IntFlag{
				Name:    "cache-size",
				Usage:   "Number of answered queries to cache (0 disables)",
				Value:   statespace.DefaultConfig().CacheSize,
				EnvVars: []string{"DEGREES_CACHE_SIZE"},
			},
			&cli.IntFlag{
				Name:    "pool-size",
				Usage:   "Workers for batch queries (0 uses one per CPU)",
				EnvVars: []string{"DEGREES_POOL_SIZE"},
			},
			&cli.IntFlag{
				Name:    "batch-size",
				Usage:   "Records written to the store at once while loading",
				Value:   statespace.DefaultConfig().BatchSize,
				EnvVars: []string{"DEGREES_BATCH_SIZE"},
			},
		},
		Before: setupLogger,
		Action: interactiveCommand,
		Commands: []*cli.Command{
			{
				Name:   "path",
				Usage:  "Print the shortest path between two people, by name or ID",
				Action: pathCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Aliases:  []string{"f"},
						Usage:    "Source person name or ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Aliases:  []string{"t"},
						Usage:    "Target person name or ID",
						Required: true,
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Answer every source,target pair of person IDs in a CSV file",
				Action: batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "pairs",
						Aliases:  []string{"p"},
						Usage:    "CSV file with source and target columns",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Report progress on stderr while answering",
					},
				},
			},
		},
	}
}

// configFromFlags builds a catalog configuration from the global flags.
// A non-empty dataDir overrides --data.
func configFromFlags(c *cli.Context, dataDir string) (*statespace.Config, error) {
	if dataDir == "" {
		dataDir = c.String("data")
	}

	cfg := statespace.NewConfig(
		statespace.WithDataDir(dataDir),
		statespace.WithBackend(c.String("backend")),
		statespace.WithBadgerPath(c.String("badger-path")),
		statespace.WithCacheSize(c.Int("cache-size")),
		statespace.WithPoolSize(c.Int("pool-size")),
		statespace.WithBatchSize(c.Int("batch-size")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openCatalog(c *cli.Context, dataDir string) (*statespace.Catalog, error) {
	cfg, err := configFromFlags(c, dataDir)
	if err != nil {
		return nil, err
	}

	slog.Debug("opening catalog", "data", cfg.DataDir, "backend", cfg.Backend)
	cat, err := statespace.OpenCatalog(c.Context, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return cat, nil
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
