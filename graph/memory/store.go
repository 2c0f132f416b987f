// Package memory provides a map-backed graph store.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
)

// Store implements graph.Store with Go maps. Relation lists are kept sorted
// on insert so reads never sort.
type Store struct {
	mu           sync.RWMutex
	people       map[core.PersonID]core.Person
	movies       map[core.MovieID]core.Movie
	names        map[string][]core.PersonID
	personMovies map[core.PersonID][]core.MovieID
	movieStars   map[core.MovieID][]core.PersonID
	stars        int
	closed       bool
}

var _ graph.Store = (*Store)(nil)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		people:       make(map[core.PersonID]core.Person),
		movies:       make(map[core.MovieID]core.Movie),
		names:        make(map[string][]core.PersonID),
		personMovies: make(map[core.PersonID][]core.MovieID),
		movieStars:   make(map[core.MovieID][]core.PersonID),
	}
}

// Close marks the store closed. Subsequent calls return graph.ErrStorageClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// AddPeople adds people and indexes their names.
func (s *Store) AddPeople(ctx context.Context, people ...*core.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return graph.ErrStorageClosed
	}

	for _, person := range people {
		if err := core.ValidatePerson(person); err != nil {
			return err
		}
		if old, ok := s.people[person.ID]; ok {
			s.names[core.NameKey(old.Name)] = remove(s.names[core.NameKey(old.Name)], person.ID)
		}
		s.people[person.ID] = core.Person{ID: person.ID, Name: person.Name, Birth: person.Birth}
		key := core.NameKey(person.Name)
		s.names[key] = insert(s.names[key], person.ID)
	}
	return nil
}

// AddMovies adds movies.
func (s *Store) AddMovies(ctx context.Context, movies ...*core.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return graph.ErrStorageClosed
	}

	for _, movie := range movies {
		if err := core.ValidateMovie(movie); err != nil {
			return err
		}
		s.movies[movie.ID] = core.Movie{ID: movie.ID, Title: movie.Title, Year: movie.Year}
	}
	return nil
}

// AddStars links people to movies. Links with an unknown endpoint are skipped.
func (s *Store) AddStars(ctx context.Context, stars ...core.Star) ([]core.Star, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, graph.ErrStorageClosed
	}

	var skipped []core.Star
	for _, star := range stars {
		_, hasPerson := s.people[star.Person]
		_, hasMovie := s.movies[star.Movie]
		if !hasPerson || !hasMovie {
			skipped = append(skipped, star)
			continue
		}
		before := len(s.personMovies[star.Person])
		s.personMovies[star.Person] = insert(s.personMovies[star.Person], star.Movie)
		s.movieStars[star.Movie] = insert(s.movieStars[star.Movie], star.Person)
		if len(s.personMovies[star.Person]) > before {
			s.stars++
		}
	}
	return skipped, nil
}

// Person retrieves a person with their movies populated.
func (s *Store) Person(ctx context.Context, id core.PersonID) (*core.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, graph.ErrStorageClosed
	}

	person, ok := s.people[id]
	if !ok {
		return nil, fmt.Errorf("%w: person %s", graph.ErrNotFound, id)
	}
	person.Movies = slices.Clone(s.personMovies[id])
	return &person, nil
}

// Movie retrieves a movie with its stars populated.
func (s *Store) Movie(ctx context.Context, id core.MovieID) (*core.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, graph.ErrStorageClosed
	}

	movie, ok := s.movies[id]
	if !ok {
		return nil, fmt.Errorf("%w: movie %s", graph.ErrNotFound, id)
	}
	movie.Stars = slices.Clone(s.movieStars[id])
	return &movie, nil
}

// MoviesOf returns the movies a person starred in, sorted by ID.
func (s *Store) MoviesOf(ctx context.Context, id core.PersonID) ([]core.MovieID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, graph.ErrStorageClosed
	}

	if _, ok := s.people[id]; !ok {
		return nil, fmt.Errorf("%w: person %s", graph.ErrNotFound, id)
	}
	return slices.Clone(s.personMovies[id]), nil
}

// StarsOf returns the people who starred in a movie, sorted by ID.
func (s *Store) StarsOf(ctx context.Context, id core.MovieID) ([]core.PersonID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, graph.ErrStorageClosed
	}

	if _, ok := s.movies[id]; !ok {
		return nil, fmt.Errorf("%w: movie %s", graph.ErrNotFound, id)
	}
	return slices.Clone(s.movieStars[id]), nil
}

// PeopleNamed returns the IDs of people with the given name, ignoring case.
func (s *Store) PeopleNamed(ctx context.Context, name string) ([]core.PersonID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, graph.ErrStorageClosed
	}

	ids := slices.Clone(s.names[core.NameKey(name)])
	if ids == nil {
		ids = []core.PersonID{}
	}
	return ids, nil
}

// Stats reports the number of people, movies and star links.
func (s *Store) Stats(ctx context.Context) (core.GraphStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return core.GraphStats{}, graph.ErrStorageClosed
	}

	return core.GraphStats{
		People: len(s.people),
		Movies: len(s.movies),
		Stars:  s.stars,
	}, nil
}

// insert adds v to the sorted slice s if it is not already present.
func insert[T cmp.Ordered](s []T, v T) []T {
	i, found := slices.BinarySearch(s, v)
	if found {
		return s
	}
	return slices.Insert(s, i, v)
}

// remove deletes v from the sorted slice s if present.
func remove[T cmp.Ordered](s []T, v T) []T {
	i, found := slices.BinarySearch(s, v)
	if !found {
		return s
	}
	return slices.Delete(s, i, i+1)
}
