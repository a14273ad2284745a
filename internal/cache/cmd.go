package cache

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// InvalidateCacheCmd represents the cache invalidate subcommand
type InvalidateCacheCmd struct {
	Source string `arg:"" help:"Cache source to invalidate: tmdb, omdb" enum:"tmdb,omdb"`
}

// ClearExpiredCmd removes entries older than the configured TTL
type ClearExpiredCmd struct{}

func openConfigured() (*CacheDB, error) {
	dbPath := viper.GetString("cache.dbfile")
	if dbPath == "" {
		dbPath = "./cache.db"
	}
	cacheDB, err := Open(dbPath, ConfiguredTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	return cacheDB, nil
}

func (i *InvalidateCacheCmd) Run() error {
	tableName := i.Source + "_cache"
	if !ValidCacheTableNames[tableName] {
		return fmt.Errorf("invalid cache source '%s'; valid sources are: tmdb, omdb", i.Source)
	}

	cacheDB, err := openConfigured()
	if err != nil {
		return err
	}
	defer func() { _ = cacheDB.Close() }()

	slog.Info("Invalidating cache", "source", i.Source, "database", cacheDB.Path())

	rowsDeleted, err := cacheDB.InvalidateSource(tableName)
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	slog.Info("Cache invalidated", "source", i.Source, "rows_deleted", rowsDeleted)
	return nil
}

func (c *ClearExpiredCmd) Run() error {
	cacheDB, err := openConfigured()
	if err != nil {
		return err
	}
	defer func() { _ = cacheDB.Close() }()

	var total int64
	for table := range ValidCacheTableNames {
		rows, err := cacheDB.ClearExpired(table, cacheDB.TTL())
		if err != nil {
			return err
		}
		total += rows
	}

	slog.Info("Expired cache entries removed", "rows_deleted", total)
	return nil
}
