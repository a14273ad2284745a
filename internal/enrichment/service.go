package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout bounds a single lookup, including retries and rate limit waits.
const DefaultTimeout = 15 * time.Second

// Service implements Adapter over a director source and a movie source.
type Service struct {
	directors Source
	movies    Source
	timeout   time.Duration
}

// NewService creates a Service. A timeout <= 0 means DefaultTimeout.
func NewService(directors, movies Source, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		directors: directors,
		movies:    movies,
		timeout:   timeout,
	}
}

// LookupDirectorFilmography returns the movies directed by name.
func (s *Service) LookupDirectorFilmography(ctx context.Context, name string) Result {
	return s.lookup(ctx, s.directors, name, func(msg string) Result {
		return Result{Type: TypeDirector, Name: name, Error: msg}
	})
}

// LookupMovie returns details for the movie with the given title.
func (s *Service) LookupMovie(ctx context.Context, title string) Result {
	return s.lookup(ctx, s.movies, title, func(msg string) Result {
		return Result{Type: TypeMovie, Title: title, Error: msg}
	})
}

// Fetch runs the lookups selected by q, director first.
func (s *Service) Fetch(ctx context.Context, q Query) []Result {
	var results []Result
	if q.Director != "" {
		results = append(results, s.LookupDirectorFilmography(ctx, q.Director))
	}
	if q.Movie != "" {
		results = append(results, s.LookupMovie(ctx, q.Movie))
	}
	return results
}

func (s *Service) lookup(ctx context.Context, source Source, query string, failed func(string) Result) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Lookup panicked", "query", query, "panic", r)
			result = Result{Error: fmt.Sprintf("An error occurred: %v", r)}
		}
	}()

	if source == nil {
		return failed("An error occurred: lookup source not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	found, err := source.Lookup(ctx, query)
	if err != nil {
		slog.Error("An error occurred while fetching data", "source", source.Name(), "query", query, "error", err)
		return failed(fmt.Sprintf("An error occurred: %v", err))
	}
	if found == nil {
		slog.Info("No match", "source", source.Name(), "query", query)
		return failed(fmt.Sprintf("Not found on %s.", source.Name()))
	}
	return *found
}
