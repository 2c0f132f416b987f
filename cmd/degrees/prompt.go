package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/statespace"
	"github.com/poiesic/statespace/core"
)

// prompter asks questions on out and reads answers a line at a time.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// personID asks for a name and resolves it to a single person. When several
// people share the name it lists them and asks for the intended ID.
func (p *prompter) personID(ctx context.Context, cat *statespace.Catalog) (core.PersonID, error) {
	name, err := p.ask("Name: ")
	if err != nil {
		return "", err
	}

	people, err := cat.PeopleNamed(ctx, name)
	if err != nil {
		return "", err
	}
	switch len(people) {
	case 0:
		return "", errPersonNotFound
	case 1:
		return people[0].ID, nil
	}

	fmt.Fprintf(p.out, "Which '%s'?\n", name)
	for _, person := range people {
		fmt.Fprintf(p.out, "ID: %s, Name: %s, Birth: %s\n", person.ID, person.Name, birthString(person.Birth))
	}

	id, err := p.ask("Intended Person ID: ")
	if err != nil {
		return "", err
	}
	for _, person := range people {
		if string(person.ID) == id {
			return person.ID, nil
		}
	}
	return "", errPersonNotFound
}
