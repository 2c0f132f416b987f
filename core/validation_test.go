package core

import (
	"errors"
	"testing"
)

func TestValidatePerson(t *testing.T) {
	tests := []struct {
		name    string
		person  *Person
		wantErr error
	}{
		{
			name:    "valid person",
			person:  &Person{ID: "102", Name: "Kevin Bacon", Birth: 1958},
			wantErr: nil,
		},
		{
			name:    "valid person with unknown birth",
			person:  &Person{ID: "102", Name: "Kevin Bacon"},
			wantErr: nil,
		},
		{
			name:    "valid person without movies",
			person:  &Person{ID: "102", Name: "Kevin Bacon", Movies: nil},
			wantErr: nil,
		},
		{
			name:    "nil person",
			person:  nil,
			wantErr: ErrInvalidPerson,
		},
		{
			name:    "empty id",
			person:  &Person{Name: "Kevin Bacon"},
			wantErr: ErrEmptyID,
		},
		{
			name:    "empty name",
			person:  &Person{ID: "102"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "negative birth",
			person:  &Person{ID: "102", Name: "Kevin Bacon", Birth: -1},
			wantErr: ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePerson(tt.person)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePerson() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidatePerson() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePerson() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidPerson) {
				t.Errorf("ValidatePerson() error = %v, want wrapped %v", err, ErrInvalidPerson)
			}
		})
	}
}

func TestValidateMovie(t *testing.T) {
	tests := []struct {
		name    string
		movie   *Movie
		wantErr error
	}{
		{
			name:    "valid movie",
			movie:   &Movie{ID: "104257", Title: "A Few Good Men", Year: 1992},
			wantErr: nil,
		},
		{
			name:    "valid movie with unknown year",
			movie:   &Movie{ID: "104257", Title: "A Few Good Men"},
			wantErr: nil,
		},
		{
			name:    "nil movie",
			movie:   nil,
			wantErr: ErrInvalidMovie,
		},
		{
			name:    "empty id",
			movie:   &Movie{Title: "A Few Good Men"},
			wantErr: ErrEmptyID,
		},
		{
			name:    "empty title",
			movie:   &Movie{ID: "104257"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative year",
			movie:   &Movie{ID: "104257", Title: "A Few Good Men", Year: -5},
			wantErr: ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMovie(tt.movie)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateMovie() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMovie() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
