package catalog

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/errors"
)

// Catalog is the root aggregate: it owns every Director and Movie and persists
// the whole tree through its Store after each mutation.
//
// Director names are not unique. Lookups by name use the first match, while
// DeleteDirector removes every match.
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	store     Store
	directors []Director
}

// New creates an empty catalog backed by store
func New(store Store) *Catalog {
	return &Catalog{store: store}
}

// Load builds a catalog from store.
//
// If the stored content is malformed the returned catalog is empty and usable,
// and the error is an *errors.FormatError the caller should report and ignore.
// Any other error means the store could not be read and the catalog is nil.
func Load(store Store) (*Catalog, error) {
	directors, err := store.Load()
	if err != nil {
		if errors.IsFormatError(err) {
			return New(store), err
		}
		return nil, err
	}

	return &Catalog{store: store, directors: directors}, nil
}

// Len returns the number of directors
func (c *Catalog) Len() int {
	return len(c.directors)
}

// Snapshot returns a deep copy of all directors in catalog order
func (c *Catalog) Snapshot() []Director {
	return cloneDirectors(c.directors)
}

func (c *Catalog) save() error {
	if err := c.store.Save(cloneDirectors(c.directors)); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

func (c *Catalog) findDirector(name string) *Director {
	for i := range c.directors {
		if c.directors[i].Name == name {
			return &c.directors[i]
		}
	}
	return nil
}

// ListDirectors yields (position, name) pairs, 1-indexed, in catalog order.
// The sequence reads the catalog lazily and must not be held across mutations.
func (c *Catalog) ListDirectors() (iter.Seq2[int, string], error) {
	if len(c.directors) == 0 {
		return nil, errors.NewNoDirectorsError()
	}

	directors := c.directors
	return func(yield func(int, string) bool) {
		for i := range directors {
			if !yield(i+1, directors[i].Name) {
				return
			}
		}
	}, nil
}

// AddDirector appends a director with no movies. Names are not checked for duplicates.
func (c *Catalog) AddDirector(name string) error {
	c.directors = append(c.directors, NewDirector(name))
	slog.Debug("Director added", "name", name)
	return c.save()
}

// RenameDirector renames the first director called oldName
func (c *Catalog) RenameDirector(oldName, newName string) error {
	director := c.findDirector(oldName)
	if director == nil {
		return errors.NewDirectorNotFoundError(oldName)
	}

	director.Name = newName
	return c.save()
}

// DeleteDirector removes every director called name, together with their movies,
// and returns how many were removed. The catalog is saved even when nothing matched.
func (c *Catalog) DeleteDirector(name string) (int, error) {
	kept := make([]Director, 0, len(c.directors))
	for _, d := range c.directors {
		if d.Name != name {
			kept = append(kept, d)
		}
	}
	removed := len(c.directors) - len(kept)
	c.directors = kept

	slog.Debug("Directors deleted", "name", name, "count", removed)
	return removed, c.save()
}

// ListMovies yields (position, movie) pairs, 1-indexed, in insertion order for
// the first director called directorName.
func (c *Catalog) ListMovies(directorName string) (iter.Seq2[int, Movie], error) {
	director := c.findDirector(directorName)
	if director == nil {
		return nil, errors.NewDirectorNotFoundError(directorName)
	}
	if len(director.Movies) == 0 {
		return nil, errors.NewNoMoviesError(directorName)
	}

	movies := director.Movies
	return func(yield func(int, Movie) bool) {
		for i := range movies {
			if !yield(i+1, movies[i]) {
				return
			}
		}
	}, nil
}

// AddMovie appends a movie to the first director called directorName
func (c *Catalog) AddMovie(directorName, title, runtime string) error {
	director := c.findDirector(directorName)
	if director == nil {
		return errors.NewDirectorNotFoundError(directorName)
	}

	director.AddMovie(NewMovie(title, runtime))
	return c.save()
}

// UpdateMovie overwrites the title and runtime of the first movie called oldTitle,
// keeping its position in the list.
func (c *Catalog) UpdateMovie(directorName, oldTitle, newTitle, newRuntime string) error {
	director := c.findDirector(directorName)
	if director == nil {
		return errors.NewDirectorNotFoundError(directorName)
	}

	movie := director.FindMovie(oldTitle)
	if movie == nil {
		return errors.NewMovieNotFoundError(directorName, oldTitle)
	}

	movie.Title = newTitle
	movie.Runtime = newRuntime
	return c.save()
}

// DeleteMovie removes every movie called title from the first director called
// directorName and returns how many were removed. Once the director is found the
// catalog is saved even when no movie matched.
func (c *Catalog) DeleteMovie(directorName, title string) (int, error) {
	director := c.findDirector(directorName)
	if director == nil {
		return 0, errors.NewDirectorNotFoundError(directorName)
	}

	removed := director.RemoveMovie(title)
	return removed, c.save()
}

// Play looks up a movie and returns the "now playing" line. It never saves.
func (c *Catalog) Play(directorName, title string) (string, error) {
	director := c.findDirector(directorName)
	if director == nil {
		return "", errors.NewMovieNotFoundError(directorName, title)
	}
	if director.FindMovie(title) == nil {
		return "", errors.NewMovieNotFoundError(directorName, title)
	}

	return fmt.Sprintf("Now Playing: '%s' directed by %s.", title, director.Name), nil
}
