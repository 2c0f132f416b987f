package search

import (
	"fmt"
	"testing"

	"github.com/poiesic/statespace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(movie, person string) *Node {
	return &Node{State: core.State{Movie: core.MovieID(movie), Person: core.PersonID(person)}}
}

func TestQueueFrontier_RemoveEmpty(t *testing.T) {
	f := NewQueueFrontier()
	assert.True(t, f.Empty())

	n, err := f.Remove()
	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrEmptyFrontier)
}

func TestQueueFrontier_FIFO(t *testing.T) {
	f := NewQueueFrontier()
	a, b, c := node("1", "a"), node("1", "b"), node("2", "c")
	f.Add(a)
	f.Add(b)
	f.Add(c)
	assert.Equal(t, 3, f.Len())

	for _, want := range []*Node{a, b, c} {
		got, err := f.Remove()
		require.NoError(t, err)
		assert.Same(t, want, got)
	}
	assert.True(t, f.Empty())

	_, err := f.Remove()
	assert.ErrorIs(t, err, ErrEmptyFrontier)
}

func TestQueueFrontier_InterleavedAddRemove(t *testing.T) {
	f := NewQueueFrontier()
	f.Add(node("1", "a"))
	f.Add(node("1", "b"))

	got, err := f.Remove()
	require.NoError(t, err)
	assert.Equal(t, core.PersonID("a"), got.State.Person)

	f.Add(node("1", "c"))

	got, err = f.Remove()
	require.NoError(t, err)
	assert.Equal(t, core.PersonID("b"), got.State.Person)

	got, err = f.Remove()
	require.NoError(t, err)
	assert.Equal(t, core.PersonID("c"), got.State.Person)
}

func TestQueueFrontier_ContainsState(t *testing.T) {
	f := NewQueueFrontier()
	state := core.State{Movie: "1", Person: "a"}
	assert.False(t, f.ContainsState(state))

	// Equality is by value, not node identity.
	f.Add(node("1", "a"))
	assert.True(t, f.ContainsState(state))
	assert.False(t, f.ContainsState(core.State{Movie: "2", Person: "a"}))

	// A state added twice stays contained until both copies are removed.
	f.Add(node("1", "a"))
	_, err := f.Remove()
	require.NoError(t, err)
	assert.True(t, f.ContainsState(state))

	_, err = f.Remove()
	require.NoError(t, err)
	assert.False(t, f.ContainsState(state))
}

func TestQueueFrontier_Compaction(t *testing.T) {
	f := NewQueueFrontier()
	for i := 0; i < 500; i++ {
		f.Add(node("m", fmt.Sprint(i)))
	}
	for i := 0; i < 400; i++ {
		got, err := f.Remove()
		require.NoError(t, err)
		require.Equal(t, core.PersonID(fmt.Sprint(i)), got.State.Person)
	}
	assert.Equal(t, 100, f.Len())

	for i := 400; i < 500; i++ {
		assert.True(t, f.ContainsState(core.State{Movie: "m", Person: core.PersonID(fmt.Sprint(i))}))
		got, err := f.Remove()
		require.NoError(t, err)
		require.Equal(t, core.PersonID(fmt.Sprint(i)), got.State.Person)
	}
	assert.True(t, f.Empty())
}

func TestNode_Path(t *testing.T) {
	root := node("m1", "source")
	assert.Empty(t, root.Path())
	assert.NotNil(t, root.Path())

	mid := &Node{State: core.State{Movie: "m1", Person: "b"}, Parent: root}
	leaf := &Node{State: core.State{Movie: "m2", Person: "c"}, Parent: mid}

	assert.Equal(t, core.Path{
		{Movie: "m1", Person: "b"},
		{Movie: "m2", Person: "c"},
	}, leaf.Path())
}
