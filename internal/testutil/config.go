package testutil

import (
	"testing"
	"time"

	"github.com/2002hackerr/movie-player/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	CatalogFile   string
	ResultsFile   string
	TMDBAPIKey    string
	OMDBAPIKey    string
	LookupTimeout time.Duration
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		CatalogFile:   config.CatalogFile,
		ResultsFile:   config.ResultsFile,
		TMDBAPIKey:    config.TMDBAPIKey,
		OMDBAPIKey:    config.OMDBAPIKey,
		LookupTimeout: config.LookupTimeout,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.CatalogFile = state.CatalogFile
	config.ResultsFile = state.ResultsFile
	config.TMDBAPIKey = state.TMDBAPIKey
	config.OMDBAPIKey = state.OMDBAPIKey
	config.LookupTimeout = state.LookupTimeout
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig points the catalog and results files into env and sets fake API keys.
// It saves the current state and restores it when the test completes.
func SetTestConfig(t *testing.T, env *TestEnv) {
	t.Helper()

	ResetConfig(t)

	config.CatalogFile = env.Path("movies_data.json")
	config.ResultsFile = env.Path("lookup_results.json")
	config.TMDBAPIKey = "test-tmdb-key"
	config.OMDBAPIKey = "test-omdb-key"
	config.LookupTimeout = 5 * time.Second
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// Note: viper doesn't have an Unset function, so we can't
		// restore the "unset" state. This is a known limitation.
	})
}

// SetupTestCache configures viper for test caching with a temporary directory.
// It creates the cache directory and sets up viper configuration.
func SetupTestCache(t *testing.T, env *TestEnv) string {
	t.Helper()

	cacheDir := env.Path("cache")
	env.MkdirAll("cache")

	viper.Set("cache.dbfile", env.Path("cache", "test-cache.db"))
	viper.Set("cache.ttl", "24h")

	return cacheDir
}
