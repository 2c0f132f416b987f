package graph

import (
	"context"

	"github.com/poiesic/statespace/core"
)

// Graph provides read access to the people/movies graph.
// Implementations must be safe for concurrent readers.
type Graph interface {
	// Person retrieves a person with their movies populated.
	// Returns ErrNotFound if the person doesn't exist.
	Person(ctx context.Context, id core.PersonID) (*core.Person, error)

	// Movie retrieves a movie with its stars populated.
	// Returns ErrNotFound if the movie doesn't exist.
	Movie(ctx context.Context, id core.MovieID) (*core.Movie, error)

	// MoviesOf returns the movies a person starred in, sorted by ID.
	// Returns ErrNotFound if the person doesn't exist.
	MoviesOf(ctx context.Context, id core.PersonID) ([]core.MovieID, error)

	// StarsOf returns the people who starred in a movie, sorted by ID.
	// Returns ErrNotFound if the movie doesn't exist.
	StarsOf(ctx context.Context, id core.MovieID) ([]core.PersonID, error)

	// PeopleNamed returns the IDs of every person whose name matches,
	// ignoring case. Returns an empty slice when nobody matches.
	PeopleNamed(ctx context.Context, name string) ([]core.PersonID, error)

	// Stats reports the number of people, movies and star links.
	Stats(ctx context.Context) (core.GraphStats, error)

	// Close releases resources held by the graph.
	Close() error
}

// Builder provides write access used while loading a graph.
type Builder interface {
	// AddPeople adds people and indexes their names.
	// Any Movies already set on the records are ignored; use AddStars.
	AddPeople(ctx context.Context, people ...*core.Person) error

	// AddMovies adds movies.
	// Any Stars already set on the records are ignored; use AddStars.
	AddMovies(ctx context.Context, movies ...*core.Movie) error

	// AddStars links people to movies in both directions.
	// Links naming an unknown person or movie are not stored and are
	// returned as skipped.
	AddStars(ctx context.Context, stars ...core.Star) (skipped []core.Star, err error)
}

// Store is a graph that can also be loaded.
type Store interface {
	Graph
	Builder
}
