package graphtest

import (
	"context"
	"testing"

	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunConformance exercises a graph.Store implementation. newStore must return
// an empty store; the suite closes it.
func RunConformance(t *testing.T, newStore func(t *testing.T) graph.Store) {
	ctx := context.Background()

	t.Run("person with movies", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		person, err := store.Person(ctx, KevinBacon)
		require.NoError(t, err)
		assert.Equal(t, "Kevin Bacon", person.Name)
		assert.Equal(t, 1958, person.Birth)
		assert.Equal(t, []core.MovieID{AFewGoodMen, Apollo13}, person.Movies)
	})

	t.Run("movie with stars", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		movie, err := store.Movie(ctx, ForrestGump)
		require.NoError(t, err)
		assert.Equal(t, "Forrest Gump", movie.Title)
		assert.Equal(t, 1994, movie.Year)
		assert.Equal(t, []core.PersonID{TomHanks, SallyField, GarySinise, RobinWright}, movie.Stars)
	})

	t.Run("relations are sorted", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		movies, err := store.MoviesOf(ctx, TomHanks)
		require.NoError(t, err)
		assert.Equal(t, []core.MovieID{ForrestGump, Apollo13}, movies)

		stars, err := store.StarsOf(ctx, Apollo13)
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{KevinBacon, TomHanks, BillPaxton, GarySinise}, stars)
	})

	t.Run("person without movies", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		movies, err := store.MoviesOf(ctx, EmmaWatsonToo)
		require.NoError(t, err)
		assert.Empty(t, movies)
	})

	t.Run("unknown ids", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		_, err := store.Person(ctx, "nope")
		assert.ErrorIs(t, err, graph.ErrNotFound)

		_, err = store.Movie(ctx, "nope")
		assert.ErrorIs(t, err, graph.ErrNotFound)

		_, err = store.MoviesOf(ctx, "nope")
		assert.ErrorIs(t, err, graph.ErrNotFound)

		_, err = store.StarsOf(ctx, "nope")
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("name index is case insensitive", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		ids, err := store.PeopleNamed(ctx, "KEVIN bacon")
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{KevinBacon}, ids)
	})

	t.Run("ambiguous name", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		ids, err := store.PeopleNamed(ctx, "emma watson")
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{EmmaWatson, EmmaWatsonToo}, ids)
	})

	t.Run("unknown name", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		ids, err := store.PeopleNamed(ctx, "Nobody")
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	t.Run("renaming updates the name index", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		require.NoError(t, store.AddPeople(ctx, &core.Person{ID: KevinBacon, Name: "K. Bacon", Birth: 1958}))

		ids, err := store.PeopleNamed(ctx, "Kevin Bacon")
		require.NoError(t, err)
		assert.Empty(t, ids)

		ids, err = store.PeopleNamed(ctx, "k. bacon")
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{KevinBacon}, ids)
	})

	t.Run("dangling stars are skipped", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		dangling := []core.Star{
			{Person: "nope", Movie: Apollo13},
			{Person: KevinBacon, Movie: "nope"},
		}
		skipped, err := store.AddStars(ctx, append(dangling, core.Star{Person: SallyField, Movie: Apollo13})...)
		require.NoError(t, err)
		assert.Equal(t, dangling, skipped)

		stars, err := store.StarsOf(ctx, Apollo13)
		require.NoError(t, err)
		assert.Contains(t, stars, SallyField)
	})

	t.Run("stats", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		Load(t, store)

		// Duplicate links are counted once.
		_, err := store.AddStars(ctx, core.Star{Person: KevinBacon, Movie: Apollo13})
		require.NoError(t, err)

		stats, err := store.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, core.GraphStats{People: 14, Movies: 6, Stars: 18}, stats)
	})

	t.Run("invalid records are rejected", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		err := store.AddPeople(ctx, &core.Person{ID: "1"})
		assert.ErrorIs(t, err, core.ErrInvalidPerson)

		err = store.AddMovies(ctx, &core.Movie{Title: "Untitled"})
		assert.ErrorIs(t, err, core.ErrInvalidMovie)
	})
}
