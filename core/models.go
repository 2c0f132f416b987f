package core

import "strings"

// PersonID identifies a person in the movie graph.
type PersonID string

// MovieID identifies a movie in the movie graph.
type MovieID string

// Person is a performer loaded from the people table.
type Person struct {
	ID     PersonID
	Name   string
	Birth  int       // Birth year, 0 when unknown
	Movies []MovieID // Movies the person starred in, sorted (populated by the graph store)
}

// Movie is a film loaded from the movies table.
type Movie struct {
	ID    MovieID
	Title string
	Year  int        // Release year, 0 when unknown
	Stars []PersonID // People who starred in the movie, sorted (populated by the graph store)
}

// NameKey returns the key used by the name index for a person's name.
// Lookups are case-insensitive.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// State is a single step of a path search: a person reached through a movie.
// Two states are equal when both components are equal.
type State struct {
	Movie  MovieID
	Person PersonID
}

// Less orders states by movie, then person.
func (s State) Less(other State) bool {
	if s.Movie != other.Movie {
		return s.Movie < other.Movie
	}
	return s.Person < other.Person
}

// Path is an ordered chain of co-starring edges from a source person to a
// target person. Each element names the movie shared with the previous person
// and the person reached through it. An empty path means source and target are
// the same person.
type Path []State

// Degrees returns the number of edges in the path.
func (p Path) Degrees() int {
	return len(p)
}

// Clone returns a copy of the path that shares no memory with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// GraphStats summarizes the size of a loaded graph.
type GraphStats struct {
	People int
	Movies int
	Stars  int
}

// Star links a person to a movie they starred in.
type Star struct {
	Person PersonID
	Movie  MovieID
}
