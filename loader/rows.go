package loader

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/poiesic/statespace/core"
)

var rowValidate = validator.New()

// personRow is one line of people.csv.
type personRow struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Birth string `validate:"omitempty,number"`
}

func (r *personRow) person() (*core.Person, error) {
	if err := rowValidate.Struct(r); err != nil {
		return nil, err
	}
	birth, err := parseYear(r.Birth)
	if err != nil {
		return nil, err
	}
	return &core.Person{ID: core.PersonID(r.ID), Name: r.Name, Birth: birth}, nil
}

// movieRow is one line of movies.csv.
type movieRow struct {
	ID    string `validate:"required"`
	Title string `validate:"required"`
	Year  string `validate:"omitempty,number"`
}

func (r *movieRow) movie() (*core.Movie, error) {
	if err := rowValidate.Struct(r); err != nil {
		return nil, err
	}
	year, err := parseYear(r.Year)
	if err != nil {
		return nil, err
	}
	return &core.Movie{ID: core.MovieID(r.ID), Title: r.Title, Year: year}, nil
}

// starRow is one line of stars.csv.
type starRow struct {
	PersonID string `validate:"required"`
	MovieID  string `validate:"required"`
}

func (r *starRow) star() (core.Star, error) {
	if err := rowValidate.Struct(r); err != nil {
		return core.Star{}, err
	}
	return core.Star{Person: core.PersonID(r.PersonID), Movie: core.MovieID(r.MovieID)}, nil
}

// parseYear reads an optional year. Blank means unknown and yields 0.
func parseYear(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
