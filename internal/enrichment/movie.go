package enrichment

import (
	"context"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/omdb"
)

// omdbClient is the part of omdb.Client the movie lookup needs.
type omdbClient interface {
	CachedFetchByTitle(ctx context.Context, title string) (*omdb.Response, bool, error)
}

// MovieSource resolves movie details through OMDb.
type MovieSource struct {
	client omdbClient
}

// NewMovieSource creates a MovieSource backed by client.
func NewMovieSource(client omdbClient) *MovieSource {
	return &MovieSource{client: client}
}

// Name returns the service name.
func (s *MovieSource) Name() string {
	return "IMDb"
}

// Lookup returns title, runtime, rating, first director and IMDb URL.
// Missing values become "Unknown" (runtime, director) or "N/A" (rating).
func (s *MovieSource) Lookup(ctx context.Context, title string) (*Result, error) {
	resp, fromCache, err := s.client.CachedFetchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	slog.Debug("Fetched movie details", "query", title, "imdb_id", resp.ImdbID, "cached", fromCache)

	result := &Result{
		Type:     TypeMovie,
		Title:    orDefault(resp.Title, "Unknown"),
		Runtime:  orDefault(resp.Runtime, "Unknown"),
		Rating:   orDefault(resp.ImdbRating, "N/A"),
		Director: "Unknown",
		IMDbURL:  resp.IMDbURL(),
	}
	if directors := resp.Directors(); len(directors) > 0 {
		result.Director = directors[0]
	}
	return result, nil
}

// orDefault treats OMDb's "N/A" placeholder like an empty value.
func orDefault(value, fallback string) string {
	if value == "" || value == "N/A" {
		return fallback
	}
	return value
}
