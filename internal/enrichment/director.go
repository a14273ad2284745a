package enrichment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/tmdb"
)

// tmdbClient is the part of tmdb.Client the director lookup needs.
type tmdbClient interface {
	CachedSearchPerson(ctx context.Context, name string) ([]tmdb.Person, bool, error)
	CachedGetMovieCredits(ctx context.Context, personID int) (*tmdb.MovieCredits, bool, error)
}

// DirectorSource resolves a director's filmography through TMDB.
type DirectorSource struct {
	client tmdbClient
}

// NewDirectorSource creates a DirectorSource backed by client.
func NewDirectorSource(client tmdbClient) *DirectorSource {
	return &DirectorSource{client: client}
}

// Name returns the service name.
func (s *DirectorSource) Name() string {
	return "TMDB"
}

// Lookup takes the first person TMDB returns for name and lists the movies
// they directed. The result keeps the queried name.
func (s *DirectorSource) Lookup(ctx context.Context, name string) (*Result, error) {
	people, fromCache, err := s.client.CachedSearchPerson(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("person search failed: %w", err)
	}
	if len(people) == 0 {
		return nil, nil
	}

	person := people[0]
	slog.Debug("Resolved director", "query", name, "tmdb_id", person.ID, "tmdb_name", person.Name, "cached", fromCache)

	credits, fromCache, err := s.client.CachedGetMovieCredits(ctx, person.ID)
	if err != nil {
		return nil, fmt.Errorf("movie credits for %s: %w", person.Name, err)
	}

	movies := credits.DirectedTitles()
	slog.Debug("Fetched filmography", "tmdb_id", person.ID, "movies", len(movies), "cached", fromCache)

	return &Result{
		Type:   TypeDirector,
		Name:   name,
		Movies: movies,
	}, nil
}
