package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/2002hackerr/movie-player/internal/cache"
	"github.com/2002hackerr/movie-player/internal/config"
)

var (
	stdout          io.Writer = os.Stdout
	stdin           io.Reader = os.Stdin
	newFetcher                = newEnrichmentService
	stdinIsTerminal           = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// CLI represents the complete command structure for the movie-player application
type CLI struct {
	// Global flags
	Catalog string `help:"Catalog file (.json, .yaml or .yml); overrides catalog.file"`
	Results string `help:"Lookup results log; overrides results.file"`
	Debug   bool   `help:"Enable debug logging"`

	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file; overrides cache.dbfile"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 720h for 30 days); overrides cache.ttl"`

	Menu     MenuCmd     `cmd:"" default:"1" help:"Interactive menu (default)"`
	Director DirectorCmd `cmd:"" help:"List and edit directors"`
	Movie    MovieCmd    `cmd:"" help:"List, edit and play a director's movies"`
	Fetch    FetchCmd    `cmd:"" help:"Look up director filmographies and movie details online"`
	Export   ExportCmd   `cmd:"" help:"Export the catalog to SQLite or a remote Datasette"`
	Cache    CacheCmd    `cmd:"" help:"Manage the lookup cache"`
}

// CacheCmd groups the cache maintenance subcommands
type CacheCmd struct {
	Invalidate   cache.InvalidateCacheCmd `cmd:"" help:"Delete every cached response of one source"`
	ClearExpired cache.ClearExpiredCmd    `cmd:"" help:"Delete cached responses older than the cache TTL"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(false)
	if err := initConfig(); err != nil {
		slog.Error("Fatal error config file", "error", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("movie-player"),
		kong.Description("Keep a catalog of directors and their movies, and look them up online."),
		kong.UsageOnError(),
	)

	if cli.Debug {
		initLogging(true)
	}
	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() error {
	config.SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		slog.Info("Config file not found, writing default config file...")
		if err := viper.SafeWriteConfig(); err != nil {
			slog.Error("Error writing config file", "error", err)
		}
	}

	// Bind env after the default file is written; API keys must not land in it
	viper.AutomaticEnv()
	for key, env := range map[string]string{
		"tmdb.api_key": "TMDB_API_KEY",
		"omdb.api_key": "OMDB_API_KEY",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	config.InitConfig()
	return nil
}

func updateGlobalConfig(cli *CLI) {
	config.SetCatalogFile(cli.Catalog)
	config.SetResultsFile(cli.Results)

	if cli.CacheDBFile != "" {
		viper.Set("cache.dbfile", cli.CacheDBFile)
	}
	if cli.CacheTTL != "" {
		viper.Set("cache.ttl", cli.CacheTTL)
	}
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
