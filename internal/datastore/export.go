package datastore

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/catalog"
)

// DefaultDatabase is the database name used for remote inserts
const DefaultDatabase = "movie_player"

// ExportStats reports how many rows an export wrote
type ExportStats struct {
	Directors int
	Movies    int
	// Merged is set when the target kept its earlier rows: rows of directors or
	// movies removed since a previous export may still be there.
	Merged bool
}

// Export writes directors and their movies to store. Targets that can clear
// tables end up holding exactly this catalog; the others get rows added or
// overwritten by id and the returned stats are marked Merged.
// Director ids follow catalog order starting at 1; movie ids are global in the same walk.
func Export(store Store, database string, directors []catalog.Director) (stats ExportStats, err error) {
	if err := store.Connect(); err != nil {
		return stats, err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close store: %w", closeErr))
		}
	}()

	for _, schema := range []string{DirectorsSchema, MoviesSchema} {
		if err := store.CreateTable(schema); err != nil {
			return stats, err
		}
	}
	// movies reference directors, so clear them first
	for _, table := range []string{MoviesTable, DirectorsTable} {
		err := store.ClearTable(database, table)
		switch {
		case errors.Is(err, ErrClearUnsupported):
			stats.Merged = true
		case err != nil:
			return stats, err
		}
	}
	if stats.Merged {
		slog.Warn("Export target cannot clear tables, earlier rows are overwritten by id only", "database", database)
	}

	directorRows, movieRows := buildRows(directors)

	if err := store.BatchInsert(database, DirectorsTable, directorRows); err != nil {
		return stats, fmt.Errorf("failed to export directors: %w", err)
	}
	if err := store.BatchInsert(database, MoviesTable, movieRows); err != nil {
		return stats, fmt.Errorf("failed to export movies: %w", err)
	}

	stats.Directors, stats.Movies = len(directorRows), len(movieRows)
	slog.Info("Catalog exported", "directors", stats.Directors, "movies", stats.Movies, "merged", stats.Merged)
	return stats, nil
}
