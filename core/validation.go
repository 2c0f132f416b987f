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


package core

import "fmt"

// ValidatePerson validates a Person according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Name must not be empty
//   - Birth must not be negative (0 means unknown)
//
// NOT validated (populated by the graph store):
//   - Movies
func ValidatePerson(person *Person) error {
	if person == nil {
		return fmt.Errorf("%w: person is nil", ErrInvalidPerson)
	}

	if person.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPerson, ErrEmptyID)
	}

	if person.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPerson, ErrEmptyName)
	}

	if person.Birth < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidPerson, ErrInvalidYear, person.Birth)
	}

	return nil
}

// ValidateMovie validates a Movie according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Title must not be empty
//   - Year must not be negative (0 means unknown)
func ValidateMovie(movie *Movie) error {
	if movie == nil {
		return fmt.Errorf("%w: movie is nil", ErrInvalidMovie)
	}

	if movie.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMovie, ErrEmptyID)
	}

	if movie.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMovie, ErrEmptyTitle)
	}

	if movie.Year < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidMovie, ErrInvalidYear, movie.Year)
	}

	return nil
}
