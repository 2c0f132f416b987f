// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package graph

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/statespace/core"
)

// Relation slices (Movies, Stars) are not part of the encoded records; stores
// keep them as separate index keys.

// MarshalPerson serializes a Person's ID, Name and Birth to bytes.
func MarshalPerson(person *core.Person) []byte {
	size := ord.String.Size(string(person.ID)) +
		ord.String.Size(person.Name) +
		varint.Int.Size(person.Birth)
	buf := make([]byte, size)
	n := ord.String.Marshal(string(person.ID), buf)
	n += ord.String.Marshal(person.Name, buf[n:])
	varint.Int.Marshal(person.Birth, buf[n:])
	return buf
}

// UnmarshalPerson deserializes a Person from bytes.
func UnmarshalPerson(data []byte) (*core.Person, error) {
	id, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: person id: %w", ErrSerializationFailed, err)
	}
	name, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: person name: %w", ErrSerializationFailed, err)
	}
	n += m
	birth, _, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: person birth: %w", ErrSerializationFailed, err)
	}
	return &core.Person{
		ID:    core.PersonID(id),
		Name:  name,
		Birth: birth,
	}, nil
}

// MarshalMovie serializes a Movie's ID, Title and Year to bytes.
func MarshalMovie(movie *core.Movie) []byte {
	size := ord.String.Size(string(movie.ID)) +
		ord.String.Size(movie.Title) +
		varint.Int.Size(movie.Year)
	buf := make([]byte, size)
	n := ord.String.Marshal(string(movie.ID), buf)
	n += ord.String.Marshal(movie.Title, buf[n:])
	varint.Int.Marshal(movie.Year, buf[n:])
	return buf
}

// UnmarshalMovie deserializes a Movie from bytes.
func UnmarshalMovie(data []byte) (*core.Movie, error) {
	id, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: movie id: %w", ErrSerializationFailed, err)
	}
	title, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: movie title: %w", ErrSerializationFailed, err)
	}
	n += m
	year, _, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: movie year: %w", ErrSerializationFailed, err)
	}
	return &core.Movie{
		ID:    core.MovieID(id),
		Title: title,
		Year:  year,
	}, nil
}
