package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultCatalogFile is the catalog storage file used when none is configured
	DefaultCatalogFile = "movies_data.json"
	// DefaultResultsFile is the append-only log of metadata lookups
	DefaultResultsFile = "lookup_results.json"
	// DefaultLookupTimeout bounds a single metadata lookup
	DefaultLookupTimeout = 15 * time.Second
)

// Global configuration variables
var (
	// CatalogFile is the path of the directors/movies storage file
	CatalogFile string
	// ResultsFile is the path of the metadata lookup results log
	ResultsFile string
	// TMDBAPIKey is the API key for TheMovieDB (director filmographies)
	TMDBAPIKey string
	// OMDBAPIKey is the API key for OMDB (movie details)
	OMDBAPIKey string
	// LookupTimeout bounds each metadata lookup
	LookupTimeout time.Duration
)

// SetDefaults registers the default values for every config key
func SetDefaults() {
	viper.SetDefault("catalog.file", DefaultCatalogFile)
	viper.SetDefault("results.file", DefaultResultsFile)
	viper.SetDefault("enrichment.timeout", DefaultLookupTimeout.String())
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "720h") // 30 days
	viper.SetDefault("datastore.dbfile", "./movie-player.db")
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	CatalogFile = viper.GetString("catalog.file")
	ResultsFile = viper.GetString("results.file")
	TMDBAPIKey = viper.GetString("tmdb.api_key")
	OMDBAPIKey = viper.GetString("omdb.api_key")

	LookupTimeout = viper.GetDuration("enrichment.timeout")
	if LookupTimeout <= 0 {
		LookupTimeout = DefaultLookupTimeout
	}
}

// SetCatalogFile overrides the catalog storage path
func SetCatalogFile(path string) {
	if path != "" {
		CatalogFile = path
	}
}

// SetResultsFile overrides the lookup results log path
func SetResultsFile(path string) {
	if path != "" {
		ResultsFile = path
	}
}
