package search

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
	"github.com/poiesic/statespace/graph/graphtest"
	"github.com/poiesic/statespace/graph/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureGraph(t *testing.T) graph.Store {
	t.Helper()
	store := memory.NewStore()
	t.Cleanup(func() { store.Close() })
	graphtest.Load(t, store)
	return store
}

func TestNewPathFinder(t *testing.T) {
	g := newFixtureGraph(t)

	t.Run("valid configuration", func(t *testing.T) {
		finder, err := NewPathFinder(g)
		require.NoError(t, err)
		assert.NotNil(t, finder)
	})

	t.Run("with options", func(t *testing.T) {
		finder, err := NewPathFinder(g,
			WithLogger(slog.Default()),
			WithMonitor(&CountingMonitor{}),
			WithCacheSize(16),
			WithPoolSize(2))
		require.NoError(t, err)
		assert.NotNil(t, finder.cache)
		assert.Equal(t, 2, finder.poolSize)
	})

	t.Run("nil options fall back to defaults", func(t *testing.T) {
		finder, err := NewPathFinder(g, WithLogger(nil), WithMonitor(nil), WithCacheSize(0), WithPoolSize(0))
		require.NoError(t, err)
		assert.NotNil(t, finder.logger)
		assert.NotNil(t, finder.monitor)
		assert.Nil(t, finder.cache)
		assert.Equal(t, 1, finder.poolSize)
	})

	t.Run("nil graph", func(t *testing.T) {
		_, err := NewPathFinder(nil)
		assert.Equal(t, ErrGraphRequired, err)
	})
}

func TestShortestPath(t *testing.T) {
	finder, err := NewPathFinder(newFixtureGraph(t))
	require.NoError(t, err)

	tests := []struct {
		name      string
		source    core.PersonID
		target    core.PersonID
		wantPath  core.Path
		wantFound bool
	}{
		{
			name:      "direct co-stars",
			source:    graphtest.KevinBacon,
			target:    graphtest.TomHanks,
			wantPath:  core.Path{{Movie: graphtest.Apollo13, Person: graphtest.TomHanks}},
			wantFound: true,
		},
		{
			name:      "reverse direction",
			source:    graphtest.TomHanks,
			target:    graphtest.KevinBacon,
			wantPath:  core.Path{{Movie: graphtest.Apollo13, Person: graphtest.KevinBacon}},
			wantFound: true,
		},
		{
			name:   "two hops through a middle person",
			source: graphtest.KevinBacon,
			target: graphtest.DustinHoffman,
			wantPath: core.Path{
				{Movie: graphtest.AFewGoodMen, Person: graphtest.TomCruise},
				{Movie: graphtest.RainMan, Person: graphtest.DustinHoffman},
			},
			wantFound: true,
		},
		{
			name:   "ties resolve to the first discovered chain",
			source: graphtest.KevinBacon,
			target: graphtest.RobinWright,
			wantPath: core.Path{
				{Movie: graphtest.Apollo13, Person: graphtest.TomHanks},
				{Movie: graphtest.ForrestGump, Person: graphtest.RobinWright},
			},
			wantFound: true,
		},
		{
			name:   "three hops",
			source: graphtest.KevinBacon,
			target: graphtest.MandyPatinkin,
			wantPath: core.Path{
				{Movie: graphtest.Apollo13, Person: graphtest.TomHanks},
				{Movie: graphtest.ForrestGump, Person: graphtest.RobinWright},
				{Movie: graphtest.ThePrincessBride, Person: graphtest.MandyPatinkin},
			},
			wantFound: true,
		},
		{
			name:      "separate component",
			source:    graphtest.KevinBacon,
			target:    graphtest.EmmaWatson,
			wantPath:  nil,
			wantFound: false,
		},
		{
			name:      "source without movies",
			source:    graphtest.EmmaWatsonToo,
			target:    graphtest.KevinBacon,
			wantPath:  nil,
			wantFound: false,
		},
		{
			name:      "target without movies",
			source:    graphtest.KevinBacon,
			target:    graphtest.EmmaWatsonToo,
			wantPath:  nil,
			wantFound: false,
		},
		{
			name:      "source is target",
			source:    graphtest.KevinBacon,
			target:    graphtest.KevinBacon,
			wantPath:  core.Path{},
			wantFound: true,
		},
		{
			name:      "source is target without movies",
			source:    graphtest.EmmaWatsonToo,
			target:    graphtest.EmmaWatsonToo,
			wantPath:  core.Path{},
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, found, err := finder.ShortestPath(context.Background(), tt.source, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestShortestPath_DegreesAreSymmetric(t *testing.T) {
	finder, err := NewPathFinder(newFixtureGraph(t))
	require.NoError(t, err)
	ctx := context.Background()

	people := []core.PersonID{
		graphtest.KevinBacon, graphtest.CaryElwes, graphtest.ValeriaGolino,
		graphtest.JackNicholson, graphtest.SallyField, graphtest.MandyPatinkin,
	}
	for _, a := range people {
		for _, b := range people {
			ab, foundAB, err := finder.ShortestPath(ctx, a, b)
			require.NoError(t, err)
			ba, foundBA, err := finder.ShortestPath(ctx, b, a)
			require.NoError(t, err)
			assert.Equal(t, foundAB, foundBA, "%s <-> %s", a, b)
			assert.Equal(t, ab.Degrees(), ba.Degrees(), "%s <-> %s", a, b)
		}
	}
}

func TestShortestPath_PathIsAChain(t *testing.T) {
	g := newFixtureGraph(t)
	finder, err := NewPathFinder(g)
	require.NoError(t, err)
	ctx := context.Background()

	path, found, err := finder.ShortestPath(ctx, graphtest.ValeriaGolino, graphtest.CaryElwes)
	require.NoError(t, err)
	require.True(t, found)

	// Every hop shares its movie with the previous person.
	prev := graphtest.ValeriaGolino
	for _, step := range path {
		stars, err := g.StarsOf(ctx, step.Movie)
		require.NoError(t, err)
		assert.Contains(t, stars, prev)
		assert.Contains(t, stars, step.Person)
		prev = step.Person
	}
	assert.Equal(t, graphtest.CaryElwes, prev)
	assert.Equal(t, 5, path.Degrees())
}

func TestShortestPath_UnknownPerson(t *testing.T) {
	finder, err := NewPathFinder(newFixtureGraph(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = finder.ShortestPath(ctx, "nope", graphtest.KevinBacon)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, _, err = finder.ShortestPath(ctx, graphtest.KevinBacon, "nope")
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, _, err = finder.ShortestPath(ctx, "nope", "nope")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestShortestPath_Cache(t *testing.T) {
	monitor := &CountingMonitor{}
	finder, err := NewPathFinder(newFixtureGraph(t), WithCacheSize(8), WithMonitor(monitor))
	require.NoError(t, err)
	ctx := context.Background()

	first, found, err := finder.ShortestPath(ctx, graphtest.KevinBacon, graphtest.MandyPatinkin)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1), monitor.Searches())

	// Mutating a returned path must not leak into the cache.
	first[0].Person = "mutated"

	second, found, err := finder.ShortestPath(ctx, graphtest.KevinBacon, graphtest.MandyPatinkin)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1), monitor.Searches())
	assert.Equal(t, graphtest.TomHanks, second[0].Person)

	// Negative answers are cached too.
	_, found, err = finder.ShortestPath(ctx, graphtest.KevinBacon, graphtest.EmmaWatson)
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = finder.ShortestPath(ctx, graphtest.KevinBacon, graphtest.EmmaWatson)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(2), monitor.Searches())
}

func TestShortestPath_Monitor(t *testing.T) {
	monitor := &CountingMonitor{}
	finder, err := NewPathFinder(newFixtureGraph(t), WithMonitor(monitor))
	require.NoError(t, err)

	_, found, err := finder.ShortestPath(context.Background(), graphtest.KevinBacon, graphtest.TomHanks)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, int64(1), monitor.Searches())
	assert.Equal(t, int64(1), monitor.Found())
	// Both Bacon roots and Tom Cruise and Jack Nicholson are expanded before
	// Tom Hanks is dequeued.
	assert.Equal(t, int64(4), monitor.Expanded())
	assert.Positive(t, monitor.Enqueued())
}

// failingGraph fails StarsOf for every movie.
type failingGraph struct {
	graph.Graph
}

func (g failingGraph) StarsOf(ctx context.Context, id core.MovieID) ([]core.PersonID, error) {
	return nil, assert.AnError
}

func TestShortestPath_CanceledContext(t *testing.T) {
	finder, err := NewPathFinder(newFixtureGraph(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found, err := finder.ShortestPath(ctx, graphtest.KevinBacon, graphtest.MandyPatinkin)
	assert.False(t, found)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_GraphErrorAborts(t *testing.T) {
	finder, err := NewPathFinder(failingGraph{newFixtureGraph(t)})
	require.NoError(t, err)

	_, found, err := finder.ShortestPath(context.Background(), graphtest.KevinBacon, graphtest.TomHanks)
	assert.False(t, found)
	assert.True(t, errors.Is(err, assert.AnError))
}
