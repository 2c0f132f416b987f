// Package graphtest provides a small shared movie graph and a conformance
// suite that every graph.Store implementation must pass.
package graphtest

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
	"github.com/stretchr/testify/require"
)

// Person IDs in the fixture.
const (
	KevinBacon    core.PersonID = "102"
	TomCruise     core.PersonID = "129"
	CaryElwes     core.PersonID = "144"
	TomHanks      core.PersonID = "158"
	DustinHoffman core.PersonID = "163"
	JackNicholson core.PersonID = "197"
	BillPaxton    core.PersonID = "200"
	SallyField    core.PersonID = "398"
	ValeriaGolino core.PersonID = "420"
	GarySinise    core.PersonID = "641"
	RobinWright   core.PersonID = "705"
	MandyPatinkin core.PersonID = "1597"
	EmmaWatson    core.PersonID = "914612"
	EmmaWatsonToo core.PersonID = "914613"
)

// Movie IDs in the fixture.
const (
	Apollo13         core.MovieID = "112384"
	AFewGoodMen      core.MovieID = "104257"
	ForrestGump      core.MovieID = "109830"
	ThePrincessBride core.MovieID = "93779"
	RainMan          core.MovieID = "95953"
	HarryPotter      core.MovieID = "1201607"
)

// People returns the fixture's people. Two share the name "Emma Watson";
// one of them starred in nothing.
func People() []*core.Person {
	return []*core.Person{
		{ID: KevinBacon, Name: "Kevin Bacon", Birth: 1958},
		{ID: TomCruise, Name: "Tom Cruise", Birth: 1962},
		{ID: CaryElwes, Name: "Cary Elwes", Birth: 1962},
		{ID: TomHanks, Name: "Tom Hanks", Birth: 1956},
		{ID: DustinHoffman, Name: "Dustin Hoffman", Birth: 1937},
		{ID: JackNicholson, Name: "Jack Nicholson", Birth: 1937},
		{ID: BillPaxton, Name: "Bill Paxton", Birth: 1955},
		{ID: SallyField, Name: "Sally Field", Birth: 1946},
		{ID: ValeriaGolino, Name: "Valeria Golino", Birth: 1965},
		{ID: GarySinise, Name: "Gary Sinise", Birth: 1955},
		{ID: RobinWright, Name: "Robin Wright", Birth: 1966},
		{ID: MandyPatinkin, Name: "Mandy Patinkin", Birth: 1952},
		{ID: EmmaWatson, Name: "Emma Watson", Birth: 1990},
		{ID: EmmaWatsonToo, Name: "Emma Watson"},
	}
}

// Movies returns the fixture's movies.
func Movies() []*core.Movie {
	return []*core.Movie{
		{ID: Apollo13, Title: "Apollo 13", Year: 1995},
		{ID: AFewGoodMen, Title: "A Few Good Men", Year: 1992},
		{ID: ForrestGump, Title: "Forrest Gump", Year: 1994},
		{ID: ThePrincessBride, Title: "The Princess Bride", Year: 1987},
		{ID: RainMan, Title: "Rain Man", Year: 1988},
		{ID: HarryPotter, Title: "Harry Potter and the Deathly Hallows: Part 2", Year: 2011},
	}
}

// Stars returns the fixture's star links. Harry Potter forms a component of
// its own.
func Stars() []core.Star {
	return []core.Star{
		{Person: KevinBacon, Movie: Apollo13},
		{Person: TomHanks, Movie: Apollo13},
		{Person: BillPaxton, Movie: Apollo13},
		{Person: GarySinise, Movie: Apollo13},
		{Person: KevinBacon, Movie: AFewGoodMen},
		{Person: TomCruise, Movie: AFewGoodMen},
		{Person: JackNicholson, Movie: AFewGoodMen},
		{Person: TomHanks, Movie: ForrestGump},
		{Person: SallyField, Movie: ForrestGump},
		{Person: GarySinise, Movie: ForrestGump},
		{Person: RobinWright, Movie: ForrestGump},
		{Person: CaryElwes, Movie: ThePrincessBride},
		{Person: RobinWright, Movie: ThePrincessBride},
		{Person: MandyPatinkin, Movie: ThePrincessBride},
		{Person: TomCruise, Movie: RainMan},
		{Person: DustinHoffman, Movie: RainMan},
		{Person: ValeriaGolino, Movie: RainMan},
		{Person: EmmaWatson, Movie: HarryPotter},
	}
}

// Load fills store with the fixture.
func Load(t testing.TB, store graph.Builder) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.AddPeople(ctx, People()...))
	require.NoError(t, store.AddMovies(ctx, Movies()...))
	skipped, err := store.AddStars(ctx, Stars()...)
	require.NoError(t, err)
	require.Empty(t, skipped)
}

// WriteCSV writes the fixture as people.csv, movies.csv and stars.csv under
// dir, in the layout the loader reads.
func WriteCSV(t testing.TB, dir string) {
	t.Helper()

	people := [][]string{{"id", "name", "birth"}}
	for _, p := range People() {
		birth := ""
		if p.Birth != 0 {
			birth = strconv.Itoa(p.Birth)
		}
		people = append(people, []string{string(p.ID), p.Name, birth})
	}
	writeCSV(t, filepath.Join(dir, "people.csv"), people)

	movies := [][]string{{"id", "title", "year"}}
	for _, m := range Movies() {
		movies = append(movies, []string{string(m.ID), m.Title, strconv.Itoa(m.Year)})
	}
	writeCSV(t, filepath.Join(dir, "movies.csv"), movies)

	stars := [][]string{{"person_id", "movie_id"}}
	for _, s := range Stars() {
		stars = append(stars, []string{string(s.Person), string(s.Movie)})
	}
	writeCSV(t, filepath.Join(dir, "stars.csv"), stars)
}

func writeCSV(t testing.TB, path string, rows [][]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll(rows))
}
