package cmd

import (
	"context"

	"github.com/2002hackerr/movie-player/internal/enrichment"
	"github.com/2002hackerr/movie-player/internal/shell"
)

// FetchCmd groups the online lookup subcommands
type FetchCmd struct {
	Director FetchDirectorCmd `cmd:"" help:"Look up the movies a director directed (TMDB)"`
	Movie    FetchMovieCmd    `cmd:"" help:"Look up a movie's runtime, rating and director (OMDb)"`
}

// FetchDirectorCmd looks up a director's filmography
type FetchDirectorCmd struct {
	Name   string `arg:"" help:"Director name"`
	NoSave bool   `help:"Print results without appending them to the results log"`
}

// FetchMovieCmd looks up movie details
type FetchMovieCmd struct {
	Title  string `arg:"" help:"Movie title"`
	NoSave bool   `help:"Print results without appending them to the results log"`
}

func (c *FetchDirectorCmd) Run() error {
	return withSession(true, func(ctx context.Context, s *shell.Session) error {
		return s.Fetch(ctx, enrichment.Query{Director: c.Name}, !c.NoSave)
	})
}

func (c *FetchMovieCmd) Run() error {
	return withSession(true, func(ctx context.Context, s *shell.Session) error {
		return s.Fetch(ctx, enrichment.Query{Movie: c.Title}, !c.NoSave)
	})
}
