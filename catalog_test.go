package statespace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph/graphtest"
	"github.com/poiesic/statespace/loader"
	"github.com/poiesic/statespace/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCatalog(t *testing.T) {
	tests := []struct {
		name string
		opts []ConfigOption
	}{
		{name: "memory backend"},
		{name: "badger in memory", opts: []ConfigOption{WithBackend(BackendBadger)}},
		{name: "badger on disk", opts: []ConfigOption{WithBackend(BackendBadger), WithBadgerPath(filepath.Join(t.TempDir(), "graph"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			graphtest.WriteCSV(t, dir)
			ctx := context.Background()

			cat, err := OpenCatalog(ctx, NewConfig(append([]ConfigOption{WithDataDir(dir)}, tt.opts...)...))
			require.NoError(t, err)
			defer cat.Close()

			assert.Equal(t, loader.Report{People: 14, Movies: 6, Stars: 18}, cat.Report())

			stats, err := cat.Graph().Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, core.GraphStats{People: 14, Movies: 6, Stars: 18}, stats)

			finder, err := cat.NewPathFinder()
			require.NoError(t, err)

			path, found, err := finder.ShortestPath(ctx, graphtest.KevinBacon, graphtest.DustinHoffman)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, 2, path.Degrees())
		})
	}
}

func TestOpenCatalog_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid config", func(t *testing.T) {
		cat, err := OpenCatalog(ctx, NewConfig(WithBackend("postgres")))
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, cat)
	})

	t.Run("missing dataset", func(t *testing.T) {
		cat, err := OpenCatalog(ctx, NewConfig(WithDataDir(filepath.Join(t.TempDir(), "nope"))))
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, cat)
	})

	t.Run("badger path is a file", func(t *testing.T) {
		dir := t.TempDir()
		graphtest.WriteCSV(t, dir)
		file := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(file, []byte("test"), 0644))

		cat, err := OpenCatalog(ctx, NewConfig(
			WithDataDir(dir),
			WithBackend(BackendBadger),
			WithBadgerPath(file)))
		assert.Error(t, err)
		assert.Nil(t, cat)
	})
}

func TestOpenCatalog_ReopenBadgerStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	graphtest.WriteCSV(t, dir)
	dbPath := filepath.Join(t.TempDir(), "graph")

	cat, err := OpenCatalog(ctx, NewConfig(
		WithDataDir(dir),
		WithBackend(BackendBadger),
		WithBadgerPath(dbPath)))
	require.NoError(t, err)
	require.NoError(t, cat.Close())

	cat, err = OpenCatalog(ctx, NewConfig(
		WithDataDir(""),
		WithBackend(BackendBadger),
		WithBadgerPath(dbPath)))
	require.NoError(t, err)
	defer cat.Close()

	assert.Equal(t, loader.Report{}, cat.Report())

	stats, err := cat.Graph().Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.GraphStats{People: 14, Movies: 6, Stars: 18}, stats)
}

func TestCatalog_PeopleNamed(t *testing.T) {
	dir := t.TempDir()
	graphtest.WriteCSV(t, dir)
	ctx := context.Background()

	cat, err := OpenCatalog(ctx, NewConfig(WithDataDir(dir)))
	require.NoError(t, err)
	defer cat.Close()

	people, err := cat.PeopleNamed(ctx, "emma watson")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, graphtest.EmmaWatson, people[0].ID)
	assert.Equal(t, graphtest.EmmaWatsonToo, people[1].ID)
	assert.Equal(t, []core.MovieID{graphtest.HarryPotter}, people[0].Movies)

	people, err = cat.PeopleNamed(ctx, "Tom Hanks")
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, graphtest.TomHanks, people[0].ID)

	people, err = cat.PeopleNamed(ctx, "Nobody")
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)
}

func TestCatalog_NewPathFinderOptions(t *testing.T) {
	dir := t.TempDir()
	graphtest.WriteCSV(t, dir)
	ctx := context.Background()

	cat, err := OpenCatalog(ctx, NewConfig(WithDataDir(dir), WithPoolSize(2)))
	require.NoError(t, err)
	defer cat.Close()

	monitor := &search.CountingMonitor{}
	finder, err := cat.NewPathFinder(search.WithMonitor(monitor))
	require.NoError(t, err)

	// The configured cache answers the repeat without searching.
	for range 2 {
		_, found, err := finder.ShortestPath(ctx, graphtest.KevinBacon, graphtest.CaryElwes)
		require.NoError(t, err)
		assert.True(t, found)
	}
	assert.Equal(t, int64(1), monitor.Searches())

	results, err := finder.ShortestPaths(ctx, []search.Query{
		{Source: graphtest.KevinBacon, Target: graphtest.TomHanks},
		{Source: graphtest.TomHanks, Target: graphtest.EmmaWatson},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Found)
	assert.False(t, results[1].Found)
}
