package badger

import (
	"context"
	"testing"

	"github.com/poiesic/statespace/graph"
	"github.com/poiesic/statespace/graph/graphtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreConformance(t *testing.T) {
	graphtest.RunConformance(t, func(t *testing.T) graph.Store {
		store, backend, err := NewMemoryStore()
		require.NoError(t, err)
		t.Cleanup(func() { backend.Close() })
		return store
	})
}

func TestNewStore_NilBackend(t *testing.T) {
	_, err := NewStore(nil)
	assert.Equal(t, ErrBackendRequired, err)
}

func TestStore_ClosedBackend(t *testing.T) {
	store, backend, err := NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	ctx := context.Background()
	_, err = store.Person(ctx, graphtest.KevinBacon)
	assert.ErrorIs(t, err, graph.ErrStorageClosed)

	_, err = store.PeopleNamed(ctx, "Kevin Bacon")
	assert.ErrorIs(t, err, graph.ErrStorageClosed)
}

func TestStore_OnDisk(t *testing.T) {
	dir := t.TempDir()
	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)

	store, err := NewStore(backend)
	require.NoError(t, err)
	graphtest.Load(t, store)
	require.NoError(t, backend.Close())

	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()

	store, err = NewStore(backend)
	require.NoError(t, err)

	stars, err := store.StarsOf(context.Background(), graphtest.RainMan)
	require.NoError(t, err)
	assert.Len(t, stars, 3)
}

func TestKeys_PrefixIsolation(t *testing.T) {
	// "1" must not match keys for person "12".
	assert.NotEqual(t,
		string(makePartialPersonMovieKey("1")),
		string(makePersonMovieKey("12", "5"))[:len(makePartialPersonMovieKey("1"))])
}
