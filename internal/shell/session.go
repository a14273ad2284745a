// Package shell renders catalog and lookup operations as the messages a user
// sees, and drives the interactive menu.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/catalog"
	"github.com/2002hackerr/movie-player/internal/enrichment"
	"github.com/2002hackerr/movie-player/internal/errors"
)

// Fetcher runs metadata lookups. enrichment.Service implements it.
type Fetcher interface {
	Fetch(ctx context.Context, q enrichment.Query) []enrichment.Result
}

// Session performs one user action at a time and writes the outcome to Out.
// Not-found and empty outcomes are printed, not returned; methods only
// return errors for failed writes to the catalog or results file.
type Session struct {
	Catalog *catalog.Catalog
	Fetcher Fetcher
	Results *enrichment.ResultLog
	Out     io.Writer
}

// NewSession creates a Session. fetcher and results may be nil when lookups are unused.
func NewSession(cat *catalog.Catalog, fetcher Fetcher, results *enrichment.ResultLog, out io.Writer) *Session {
	return &Session{
		Catalog: cat,
		Fetcher: fetcher,
		Results: results,
		Out:     out,
	}
}

func (s *Session) println(format string, args ...any) {
	_, _ = fmt.Fprintf(s.Out, format+"\n", args...)
}

// report prints business errors and passes everything else through.
func (s *Session) report(err error) error {
	if errors.IsNotFoundError(err) || errors.IsEmptyError(err) {
		s.println("%s", err.Error())
		return nil
	}
	return err
}

// reportMovie prints a missing director as a missing movie, the way the
// movie-scoped actions have always reported it.
func (s *Session) reportMovie(err error, directorName, title string) error {
	if errors.IsNotFoundError(err) {
		s.println("%s", errors.NewMovieNotFoundError(directorName, title).Error())
		return nil
	}
	return s.report(err)
}

// ListDirectors prints "i. name" for every director.
func (s *Session) ListDirectors() error {
	directors, err := s.Catalog.ListDirectors()
	if err != nil {
		return s.report(err)
	}
	for i, name := range directors {
		s.println("%d. %s", i, name)
	}
	return nil
}

// AddDirector adds a director with no movies.
func (s *Session) AddDirector(name string) error {
	if err := s.Catalog.AddDirector(name); err != nil {
		return s.report(err)
	}
	s.println("Director '%s' added.", name)
	return nil
}

// RenameDirector renames the first director called oldName.
func (s *Session) RenameDirector(oldName, newName string) error {
	if err := s.Catalog.RenameDirector(oldName, newName); err != nil {
		return s.report(err)
	}
	s.println("Director '%s' updated to '%s'.", oldName, newName)
	return nil
}

// DeleteDirector removes every director called name.
func (s *Session) DeleteDirector(name string) error {
	removed, err := s.Catalog.DeleteDirector(name)
	if err != nil {
		return s.report(err)
	}
	slog.Debug("Deleted directors", "name", name, "count", removed)
	s.println("Director '%s' and all associated movies deleted.", name)
	return nil
}

// ListMovies prints "i. title (runtime)" for the director's movies.
func (s *Session) ListMovies(directorName string) error {
	movies, err := s.Catalog.ListMovies(directorName)
	if err != nil {
		return s.report(err)
	}
	for i, movie := range movies {
		s.println("%d. %s", i, movie)
	}
	return nil
}

// AddMovie adds a movie under the first director called directorName.
func (s *Session) AddMovie(directorName, title, runtime string) error {
	if err := s.Catalog.AddMovie(directorName, title, runtime); err != nil {
		return s.report(err)
	}
	s.println("Movie '%s' added under director '%s'.", title, directorName)
	return nil
}

// UpdateMovie replaces a movie's title and runtime.
func (s *Session) UpdateMovie(directorName, oldTitle, newTitle, newRuntime string) error {
	if err := s.Catalog.UpdateMovie(directorName, oldTitle, newTitle, newRuntime); err != nil {
		return s.reportMovie(err, directorName, oldTitle)
	}
	s.println("Movie '%s' updated to '%s' (%s).", oldTitle, newTitle, newRuntime)
	return nil
}

// DeleteMovie removes every movie called title from the director.
func (s *Session) DeleteMovie(directorName, title string) error {
	removed, err := s.Catalog.DeleteMovie(directorName, title)
	if err != nil {
		return s.reportMovie(err, directorName, title)
	}
	slog.Debug("Deleted movies", "director", directorName, "title", title, "count", removed)
	s.println("Movie '%s' deleted from director '%s'.", title, directorName)
	return nil
}

// Play prints the now playing line.
func (s *Session) Play(directorName, title string) error {
	line, err := s.Catalog.Play(directorName, title)
	if err != nil {
		return s.reportMovie(err, directorName, title)
	}
	s.println("%s", line)
	return nil
}

// Fetch looks up q, appends the results to the results log when save is set,
// and prints each result as indented JSON.
func (s *Session) Fetch(ctx context.Context, q enrichment.Query, save bool) error {
	if s.Fetcher == nil {
		return fmt.Errorf("metadata lookups are not configured")
	}

	results := s.Fetcher.Fetch(ctx, q)

	if save && s.Results != nil {
		if err := s.Results.Append(results); err != nil {
			return err
		}
		s.println("Results appended to '%s'.", s.Results.Path())
	}

	for _, result := range results {
		pretty, err := result.Pretty()
		if err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
		s.println("%s", pretty)
	}
	return nil
}
