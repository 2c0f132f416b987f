package badger

import (
	"github.com/poiesic/statespace/core"
)

// Key prefixes for different data types
const (
	personPrefix      = "person:"
	moviePrefix       = "movie:"
	personNamePrefix  = "pname:"
	personMoviePrefix = "pmovie:"
	movieStarPrefix   = "mstar:"
)

// keySep separates the components of composite keys. IDs and names never
// contain a NUL byte, so a prefix scan over "a\x00" never picks up "ab\x00".
const keySep = "\x00"

// makePersonKey generates a key for a person by ID.
func makePersonKey(id core.PersonID) []byte {
	return []byte(personPrefix + string(id))
}

// makeMovieKey generates a key for a movie by ID.
func makeMovieKey(id core.MovieID) []byte {
	return []byte(moviePrefix + string(id))
}

// makeNameKey generates a composite key for the name index.
// Format: prefix:name\x00personID
func makeNameKey(name string, id core.PersonID) []byte {
	return []byte(personNamePrefix + core.NameKey(name) + keySep + string(id))
}

// makePartialNameKey generates a partial key for name lookups.
// Format: prefix:name\x00
func makePartialNameKey(name string) []byte {
	return []byte(personNamePrefix + core.NameKey(name) + keySep)
}

// makePersonMovieKey generates a composite key for the person -> movie index.
// Format: prefix:personID\x00movieID
func makePersonMovieKey(person core.PersonID, movie core.MovieID) []byte {
	return []byte(personMoviePrefix + string(person) + keySep + string(movie))
}

// makePartialPersonMovieKey generates a partial key for a person's movies.
func makePartialPersonMovieKey(person core.PersonID) []byte {
	return []byte(personMoviePrefix + string(person) + keySep)
}

// makeMovieStarKey generates a composite key for the movie -> person index.
// Format: prefix:movieID\x00personID
func makeMovieStarKey(movie core.MovieID, person core.PersonID) []byte {
	return []byte(movieStarPrefix + string(movie) + keySep + string(person))
}

// makePartialMovieStarKey generates a partial key for a movie's stars.
func makePartialMovieStarKey(movie core.MovieID) []byte {
	return []byte(movieStarPrefix + string(movie) + keySep)
}
