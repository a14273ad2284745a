// Package enrichment looks up director filmographies and movie details
// from external metadata services.
package enrichment

import "context"

const (
	// TypeDirector marks a director filmography result.
	TypeDirector = "director"
	// TypeMovie marks a movie details result.
	TypeMovie = "movie"
)

// Adapter is the metadata lookup surface used by the shell and CLI.
// Implementations never panic and never return a Go error: every failure
// is reported in Result.Error.
type Adapter interface {
	LookupDirectorFilmography(ctx context.Context, name string) Result
	LookupMovie(ctx context.Context, title string) Result
}

// Source fetches one kind of record from an external service.
type Source interface {
	// Name returns the human-readable name of the service (e.g., "TMDB").
	Name() string

	// Lookup returns nil, nil when the service has no match for query.
	// Returns nil, error for actual errors (network issues, rate limits, etc.)
	Lookup(ctx context.Context, query string) (*Result, error)
}

// Query selects what Service.Fetch looks up. Empty fields are skipped.
type Query struct {
	Director string
	Movie    string
}
