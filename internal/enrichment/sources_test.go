package enrichment

import (
	"context"
	"errors"
	"testing"

	"github.com/2002hackerr/movie-player/internal/omdb"
	"github.com/2002hackerr/movie-player/internal/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTMDB struct {
	people     []tmdb.Person
	credits    *tmdb.MovieCredits
	searchErr  error
	creditsErr error
	creditsFor []int
}

func (f *fakeTMDB) CachedSearchPerson(ctx context.Context, name string) ([]tmdb.Person, bool, error) {
	return f.people, false, f.searchErr
}

func (f *fakeTMDB) CachedGetMovieCredits(ctx context.Context, personID int) (*tmdb.MovieCredits, bool, error) {
	f.creditsFor = append(f.creditsFor, personID)
	return f.credits, false, f.creditsErr
}

type fakeOMDB struct {
	resp *omdb.Response
	err  error
}

func (f *fakeOMDB) CachedFetchByTitle(ctx context.Context, title string) (*omdb.Response, bool, error) {
	return f.resp, false, f.err
}

func TestDirectorSource_Lookup(t *testing.T) {
	client := &fakeTMDB{
		people: []tmdb.Person{{ID: 7, Name: "Akira Kurosawa"}, {ID: 8, Name: "Someone Else"}},
		credits: &tmdb.MovieCredits{Crew: []tmdb.Credit{
			{Title: "Rashomon", Job: "Director"},
			{Title: "Ikiru", Job: "Director"},
			{Title: "Runaway Train", Job: "Screenplay"},
		}},
	}
	source := NewDirectorSource(client)

	result, err := source.Lookup(context.Background(), "akira kurosawa")
	require.NoError(t, err)
	assert.Equal(t, &Result{Type: TypeDirector, Name: "akira kurosawa", Movies: []string{"Rashomon", "Ikiru"}}, result)
	assert.Equal(t, []int{7}, client.creditsFor, "first search hit is used")
	assert.Equal(t, "TMDB", source.Name())
}

func TestDirectorSource_NotFound(t *testing.T) {
	result, err := NewDirectorSource(&fakeTMDB{}).Lookup(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDirectorSource_Errors(t *testing.T) {
	_, err := NewDirectorSource(&fakeTMDB{searchErr: errors.New("down")}).Lookup(context.Background(), "X")
	assert.ErrorContains(t, err, "person search failed")

	client := &fakeTMDB{people: []tmdb.Person{{ID: 1, Name: "X"}}, creditsErr: errors.New("timeout")}
	_, err = NewDirectorSource(client).Lookup(context.Background(), "X")
	assert.ErrorContains(t, err, "movie credits for X")
}

func TestMovieSource_Lookup(t *testing.T) {
	client := &fakeOMDB{resp: &omdb.Response{
		Title:      "The Matrix",
		Runtime:    "136 min",
		ImdbRating: "8.7",
		Director:   "Lana Wachowski, Lilly Wachowski",
		ImdbID:     "tt0133093",
	}}

	result, err := NewMovieSource(client).Lookup(context.Background(), "the matrix")
	require.NoError(t, err)
	assert.Equal(t, &Result{
		Type:     TypeMovie,
		Title:    "The Matrix",
		Runtime:  "136 min",
		Rating:   "8.7",
		Director: "Lana Wachowski",
		IMDbURL:  "https://www.imdb.com/title/tt0133093/",
	}, result)
}

func TestMovieSource_Defaults(t *testing.T) {
	client := &fakeOMDB{resp: &omdb.Response{Title: "Obscure", Runtime: "N/A", ImdbRating: "N/A", Director: "N/A", ImdbID: "tt0000001"}}

	result, err := NewMovieSource(client).Lookup(context.Background(), "Obscure")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", result.Runtime)
	assert.Equal(t, "N/A", result.Rating)
	assert.Equal(t, "Unknown", result.Director)
}

func TestMovieSource_NotFoundAndError(t *testing.T) {
	result, err := NewMovieSource(&fakeOMDB{}).Lookup(context.Background(), "Nothing")
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = NewMovieSource(&fakeOMDB{err: errors.New("limit")}).Lookup(context.Background(), "Anything")
	assert.EqualError(t, err, "limit")
}
