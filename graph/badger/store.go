package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
)

// ErrBackendRequired is returned when a backend is not provided.
var ErrBackendRequired = errors.New("badger backend required")

// Store implements graph.Store for BadgerDB.
//
// Entities are stored as mus-encoded values under their own keys. Relations
// and the name index are value-less composite keys, so listing a person's
// movies is a prefix scan that yields IDs in sorted order.
type Store struct {
	backend *Backend
}

var _ graph.Store = (*Store)(nil)

// NewStore creates a new Store on top of an open backend.
func NewStore(backend *Backend) (*Store, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &Store{
		backend: backend,
	}, nil
}

// Close releases resources. The backend is owned by the caller.
func (s *Store) Close() error {
	return nil
}

// AddPeople adds people and indexes their names.
func (s *Store) AddPeople(ctx context.Context, people ...*core.Person) error {
	if s.backend.IsClosed() {
		return graph.ErrStorageClosed
	}
	for _, person := range people {
		if err := core.ValidatePerson(person); err != nil {
			return err
		}
	}

	// Collect names of people being replaced so stale index keys can be dropped.
	previous := make(map[core.PersonID]string)
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, person := range people {
			old, err := readPerson(tx, person.ID)
			if err != nil {
				return err
			}
			if old != nil {
				previous[person.ID] = old.Name
			}
		}
		return nil
	}, false)
	if err != nil {
		return err
	}

	return s.backend.WithWriteBatch(func(wb *badger.WriteBatch) error {
		for _, person := range people {
			if oldName, ok := previous[person.ID]; ok {
				if err := wb.Delete(makeNameKey(oldName, person.ID)); err != nil {
					return err
				}
			}
			if err := wb.Set(makePersonKey(person.ID), graph.MarshalPerson(person)); err != nil {
				return err
			}
			if err := wb.Set(makeNameKey(person.Name, person.ID), []byte{}); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddMovies adds movies.
func (s *Store) AddMovies(ctx context.Context, movies ...*core.Movie) error {
	if s.backend.IsClosed() {
		return graph.ErrStorageClosed
	}
	for _, movie := range movies {
		if err := core.ValidateMovie(movie); err != nil {
			return err
		}
	}

	return s.backend.WithWriteBatch(func(wb *badger.WriteBatch) error {
		for _, movie := range movies {
			if err := wb.Set(makeMovieKey(movie.ID), graph.MarshalMovie(movie)); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddStars links people to movies. Links with an unknown endpoint are skipped.
func (s *Store) AddStars(ctx context.Context, stars ...core.Star) ([]core.Star, error) {
	if s.backend.IsClosed() {
		return nil, graph.ErrStorageClosed
	}

	var valid, skipped []core.Star
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, star := range stars {
			hasPerson, err := keyExists(tx, makePersonKey(star.Person))
			if err != nil {
				return err
			}
			hasMovie, err := keyExists(tx, makeMovieKey(star.Movie))
			if err != nil {
				return err
			}
			if hasPerson && hasMovie {
				valid = append(valid, star)
			} else {
				skipped = append(skipped, star)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	err = s.backend.WithWriteBatch(func(wb *badger.WriteBatch) error {
		for _, star := range valid {
			if err := wb.Set(makePersonMovieKey(star.Person, star.Movie), []byte{}); err != nil {
				return err
			}
			if err := wb.Set(makeMovieStarKey(star.Movie, star.Person), []byte{}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skipped, nil
}

// Person retrieves a person with their movies populated.
func (s *Store) Person(ctx context.Context, id core.PersonID) (*core.Person, error) {
	if s.backend.IsClosed() {
		return nil, graph.ErrStorageClosed
	}

	var result *core.Person
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		person, err := readPerson(tx, id)
		if err != nil {
			return err
		}
		if person == nil {
			return fmt.Errorf("%w: person %s", graph.ErrNotFound, id)
		}
		movies, err := scanSuffixes(tx, makePartialPersonMovieKey(id))
		if err != nil {
			return err
		}
		person.Movies = toMovieIDs(movies)
		result = person
		return nil
	}, false)
	return result, err
}

// Movie retrieves a movie with its stars populated.
func (s *Store) Movie(ctx context.Context, id core.MovieID) (*core.Movie, error) {
	if s.backend.IsClosed() {
		return nil, graph.ErrStorageClosed
	}

	var result *core.Movie
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		movie, err := readMovie(tx, id)
		if err != nil {
			return err
		}
		if movie == nil {
			return fmt.Errorf("%w: movie %s", graph.ErrNotFound, id)
		}
		stars, err := scanSuffixes(tx, makePartialMovieStarKey(id))
		if err != nil {
			return err
		}
		movie.Stars = toPersonIDs(stars)
		result = movie
		return nil
	}, false)
	return result, err
}

// MoviesOf returns the movies a person starred in, sorted by ID.
func (s *Store) MoviesOf(ctx context.Context, id core.PersonID) ([]core.MovieID, error) {
	if s.backend.IsClosed() {
		return nil, graph.ErrStorageClosed
	}

	var result []core.MovieID
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		exists, err := keyExists(tx, makePersonKey(id))
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: person %s", graph.ErrNotFound, id)
		}
		movies, err := scanSuffixes(tx, makePartialPersonMovieKey(id))
		if err != nil {
			return err
		}
		result = toMovieIDs(movies)
		return nil
	}, false)
	return result, err
}

// StarsOf returns the people who starred in a movie, sorted by ID.
func (s *Store) StarsOf(ctx context.Context, id core.MovieID) ([]core.PersonID, error) {
	if s.backend.IsClosed() {
		return nil, graph.ErrStorageClosed
	}

	var result []core.PersonID
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		exists, err := keyExists(tx, makeMovieKey(id))
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: movie %s", graph.ErrNotFound, id)
		}
		stars, err := scanSuffixes(tx, makePartialMovieStarKey(id))
		if err != nil {
			return err
		}
		result = toPersonIDs(stars)
		return nil
	}, false)
	return result, err
}

// PeopleNamed returns the IDs of people with the given name, ignoring case.
func (s *Store) PeopleNamed(ctx context.Context, name string) ([]core.PersonID, error) {
	if s.backend.IsClosed() {
		return nil, graph.ErrStorageClosed
	}

	var result []core.PersonID
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := scanSuffixes(tx, makePartialNameKey(name))
		if err != nil {
			return err
		}
		result = toPersonIDs(ids)
		return nil
	}, false)
	return result, err
}

// Stats reports the number of people, movies and star links.
func (s *Store) Stats(ctx context.Context) (core.GraphStats, error) {
	if s.backend.IsClosed() {
		return core.GraphStats{}, graph.ErrStorageClosed
	}

	var stats core.GraphStats
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		stats.People = countPrefix(tx, []byte(personPrefix))
		stats.Movies = countPrefix(tx, []byte(moviePrefix))
		stats.Stars = countPrefix(tx, []byte(personMoviePrefix))
		return nil
	}, false)
	return stats, err
}

// readPerson reads a person record. Returns nil, nil when absent.
func readPerson(tx *badger.Txn, id core.PersonID) (*core.Person, error) {
	item, err := tx.Get(makePersonKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var person *core.Person
	err = item.Value(func(val []byte) error {
		var err error
		person, err = graph.UnmarshalPerson(val)
		return err
	})
	return person, err
}

// readMovie reads a movie record. Returns nil, nil when absent.
func readMovie(tx *badger.Txn, id core.MovieID) (*core.Movie, error) {
	item, err := tx.Get(makeMovieKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var movie *core.Movie
	err = item.Value(func(val []byte) error {
		var err error
		movie, err = graph.UnmarshalMovie(val)
		return err
	})
	return movie, err
}

func keyExists(tx *badger.Txn, key []byte) (bool, error) {
	_, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// scanSuffixes returns, in key order, the part of every key after prefix.
func scanSuffixes(tx *badger.Txn, prefix []byte) ([]string, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	iter := tx.NewIterator(opts)
	defer iter.Close()

	suffixes := []string{}
	for iter.Rewind(); iter.Valid(); iter.Next() {
		key := iter.Item().Key()
		suffixes = append(suffixes, string(key[len(prefix):]))
	}
	return suffixes, nil
}

func countPrefix(tx *badger.Txn, prefix []byte) int {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	iter := tx.NewIterator(opts)
	defer iter.Close()

	count := 0
	for iter.Rewind(); iter.Valid(); iter.Next() {
		count++
	}
	return count
}

func toMovieIDs(raw []string) []core.MovieID {
	ids := make([]core.MovieID, len(raw))
	for i, id := range raw {
		ids[i] = core.MovieID(id)
	}
	return ids
}

func toPersonIDs(raw []string) []core.PersonID {
	ids := make([]core.PersonID, len(raw))
	for i, id := range raw {
		ids[i] = core.PersonID(id)
	}
	return ids
}
