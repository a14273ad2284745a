package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/viper"

	"github.com/2002hackerr/movie-player/internal/cache"
	"github.com/2002hackerr/movie-player/internal/catalog"
	"github.com/2002hackerr/movie-player/internal/config"
	"github.com/2002hackerr/movie-player/internal/enrichment"
	"github.com/2002hackerr/movie-player/internal/errors"
	"github.com/2002hackerr/movie-player/internal/omdb"
	"github.com/2002hackerr/movie-player/internal/shell"
	"github.com/2002hackerr/movie-player/internal/tmdb"
)

// loadCatalog opens the configured catalog. A malformed file is logged and
// replaced by an empty catalog; unreadable files are fatal.
func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(catalog.NewFileStore(config.CatalogFile))
	if errors.IsFormatError(err) {
		slog.Warn("Catalog file is malformed, starting with an empty catalog", "path", config.CatalogFile, "error", err)
		return cat, nil
	}
	return cat, err
}

// newEnrichmentService wires TMDB and OMDb clients behind the shared lookup cache.
// The returned func releases the cache.
func newEnrichmentService() (shell.Fetcher, func(), error) {
	cacheDB, err := cache.Open(viper.GetString("cache.dbfile"), cache.ConfiguredTTL())
	if err != nil {
		// lookups still work uncached
		slog.Warn("Lookup cache unavailable", "error", err)
		cacheDB = nil
	}

	if config.TMDBAPIKey == "" {
		slog.Warn("TMDB API key not set; director lookups will fail", "env", "TMDB_API_KEY")
	}
	if config.OMDBAPIKey == "" {
		slog.Warn("OMDB API key not set; movie lookups will fail", "env", "OMDB_API_KEY")
	}

	tmdbClient := tmdb.NewClient(config.TMDBAPIKey, tmdb.WithCache(cacheDB))
	omdbClient := omdb.NewClient(config.OMDBAPIKey, omdb.WithCache(cacheDB))

	service := enrichment.NewService(
		enrichment.NewDirectorSource(tmdbClient),
		enrichment.NewMovieSource(omdbClient),
		config.LookupTimeout,
	)

	closeFn := func() {
		if cacheDB == nil {
			return
		}
		if err := cacheDB.Close(); err != nil {
			slog.Warn("Failed to close lookup cache", "error", err)
		}
	}
	return service, closeFn, nil
}

// withSession loads the catalog, builds a Session and runs fn with it.
func withSession(lookups bool, fn func(ctx context.Context, s *shell.Session) error) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var fetcher shell.Fetcher
	if lookups {
		f, closeFn, err := newFetcher()
		if err != nil {
			return err
		}
		defer closeFn()
		fetcher = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := shell.NewSession(cat, fetcher, enrichment.NewResultLog(config.ResultsFile), stdout)
	return fn(ctx, session)
}
