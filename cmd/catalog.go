package cmd

import (
	"context"

	"github.com/2002hackerr/movie-player/internal/shell"
)

// DirectorCmd groups the director subcommands
type DirectorCmd struct {
	List   DirectorListCmd   `cmd:"" help:"List directors"`
	Add    DirectorAddCmd    `cmd:"" help:"Add a director with no movies"`
	Rename DirectorRenameCmd `cmd:"" help:"Rename a director"`
	Delete DirectorDeleteCmd `cmd:"" help:"Delete a director and all their movies"`
}

// DirectorListCmd lists directors
type DirectorListCmd struct{}

// DirectorAddCmd adds a director
type DirectorAddCmd struct {
	Name string `arg:"" help:"Director name"`
}

// DirectorRenameCmd renames a director
type DirectorRenameCmd struct {
	Old string `arg:"" help:"Current director name"`
	New string `arg:"" help:"New director name"`
}

// DirectorDeleteCmd deletes every director with the given name
type DirectorDeleteCmd struct {
	Name string `arg:"" help:"Director name"`
}

// MovieCmd groups the movie subcommands
type MovieCmd struct {
	List   MovieListCmd   `cmd:"" help:"List a director's movies"`
	Add    MovieAddCmd    `cmd:"" help:"Add a movie under a director"`
	Update MovieUpdateCmd `cmd:"" help:"Change a movie's title and runtime"`
	Delete MovieDeleteCmd `cmd:"" help:"Delete a movie from a director"`
	Play   MoviePlayCmd   `cmd:"" help:"Play a movie"`
}

// MovieListCmd lists a director's movies
type MovieListCmd struct {
	Director string `arg:"" help:"Director name"`
}

// MovieAddCmd adds a movie
type MovieAddCmd struct {
	Director string `arg:"" help:"Director name"`
	Title    string `arg:"" help:"Movie title"`
	Runtime  string `arg:"" help:"Movie runtime (e.g., '120 minutes')"`
}

// MovieUpdateCmd replaces a movie's title and runtime
type MovieUpdateCmd struct {
	Director string `arg:"" help:"Director name"`
	Old      string `arg:"" help:"Current movie title"`
	New      string `arg:"" help:"New movie title"`
	Runtime  string `arg:"" help:"New runtime (e.g., '120 minutes')"`
}

// MovieDeleteCmd deletes a movie
type MovieDeleteCmd struct {
	Director string `arg:"" help:"Director name"`
	Title    string `arg:"" help:"Movie title"`
}

// MoviePlayCmd plays a movie
type MoviePlayCmd struct {
	Director string `arg:"" help:"Director name"`
	Title    string `arg:"" help:"Movie title"`
}

// Run methods for each command

func (c *DirectorListCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.ListDirectors()
	})
}

func (c *DirectorAddCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.AddDirector(c.Name)
	})
}

func (c *DirectorRenameCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.RenameDirector(c.Old, c.New)
	})
}

func (c *DirectorDeleteCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.DeleteDirector(c.Name)
	})
}

func (c *MovieListCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.ListMovies(c.Director)
	})
}

func (c *MovieAddCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.AddMovie(c.Director, c.Title, c.Runtime)
	})
}

func (c *MovieUpdateCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.UpdateMovie(c.Director, c.Old, c.New, c.Runtime)
	})
}

func (c *MovieDeleteCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.DeleteMovie(c.Director, c.Title)
	})
}

func (c *MoviePlayCmd) Run() error {
	return withSession(false, func(_ context.Context, s *shell.Session) error {
		return s.Play(c.Director, c.Title)
	})
}
