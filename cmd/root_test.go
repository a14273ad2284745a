package cmd

import (
	"os"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2002hackerr/movie-player/internal/config"
	"github.com/2002hackerr/movie-player/internal/testutil"
)

func resetCmdState(t *testing.T) {
	testutil.ResetConfig(t)

	origStdout, origStdin := stdout, stdin
	origFetcher, origTerminal := newFetcher, stdinIsTerminal

	t.Cleanup(func() {
		stdout, stdin = origStdout, origStdin
		newFetcher, stdinIsTerminal = origFetcher, origTerminal
	})

	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("OMDB_API_KEY", "")
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"movie-player"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("movie-player"),
		kong.Description("Keep a catalog of directors and their movies, and look them up online."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

func TestUpdateGlobalConfig(t *testing.T) {
	resetCmdState(t)
	config.CatalogFile = "movies_data.json"
	config.ResultsFile = "lookup_results.json"

	cli := &CLI{
		Catalog:     "/tmp/catalog.yaml",
		Results:     "/tmp/results.json",
		CacheDBFile: "/tmp/cache.db",
		CacheTTL:    "12h",
	}

	updateGlobalConfig(cli)

	assert.Equal(t, "/tmp/catalog.yaml", config.CatalogFile)
	assert.Equal(t, "/tmp/results.json", config.ResultsFile)
	assert.Equal(t, "/tmp/cache.db", viper.GetString("cache.dbfile"))
	assert.Equal(t, "12h", viper.GetString("cache.ttl"))
}

func TestUpdateGlobalConfig_EmptyFlagsKeepConfig(t *testing.T) {
	resetCmdState(t)
	config.SetDefaults()
	config.CatalogFile = "from-config.json"

	updateGlobalConfig(&CLI{})

	assert.Equal(t, "from-config.json", config.CatalogFile)
	assert.Equal(t, "./cache.db", viper.GetString("cache.dbfile"))
	assert.Equal(t, "720h", viper.GetString("cache.ttl"))
}

func TestInitConfig_WritesDefaultConfigAndContinues(t *testing.T) {
	resetCmdState(t)
	env := testutil.NewTestEnv(t)
	env.Chdir(".")

	require.NoError(t, initConfig())

	env.RequireFileExists("config.yaml")
	env.AssertFileContains("config.yaml", "movies_data.json")
	assert.Equal(t, config.DefaultCatalogFile, config.CatalogFile)
	assert.Equal(t, config.DefaultResultsFile, config.ResultsFile)
	assert.Equal(t, config.DefaultLookupTimeout, config.LookupTimeout)
}

func TestInitConfig_ReadsFileAndEnvironment(t *testing.T) {
	resetCmdState(t)
	env := testutil.NewTestEnv(t)
	env.WriteFileString("config.yaml", `catalog:
  file: shelf.yaml
enrichment:
  timeout: 3s
omdb:
  api_key: from-file
`)
	env.Chdir(".")
	t.Setenv("TMDB_API_KEY", "tmdb-from-env")
	t.Setenv("OMDB_API_KEY", "")

	require.NoError(t, initConfig())

	assert.Equal(t, "shelf.yaml", config.CatalogFile)
	assert.Equal(t, 3*time.Second, config.LookupTimeout)
	assert.Equal(t, "tmdb-from-env", config.TMDBAPIKey)
	assert.Equal(t, "from-file", config.OMDBAPIKey)
}

func TestInitConfig_KeysNotWrittenToDefaultFile(t *testing.T) {
	resetCmdState(t)
	env := testutil.NewTestEnv(t)
	env.Chdir(".")
	t.Setenv("TMDB_API_KEY", "secret-tmdb-key")

	require.NoError(t, initConfig())

	assert.NotContains(t, env.ReadFileString("config.yaml"), "secret-tmdb-key")
	assert.Equal(t, "secret-tmdb-key", config.TMDBAPIKey)
}

func TestMenuIsDefaultCommand(t *testing.T) {
	resetCmdState(t)

	_, ctx := parseCLI(t)

	assert.Equal(t, "menu", ctx.Command())
}

func TestCommandParsing(t *testing.T) {
	resetCmdState(t)

	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, cli *CLI)
	}{
		{
			name:    "director rename",
			args:    []string{"director", "rename", "Old Name", "New Name"},
			command: "director rename <old> <new>",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "Old Name", cli.Director.Rename.Old)
				assert.Equal(t, "New Name", cli.Director.Rename.New)
			},
		},
		{
			name:    "movie update",
			args:    []string{"movie", "update", "Michael Mann", "Heat", "Heat (1995)", "170 minutes"},
			command: "movie update <director> <old> <new> <runtime>",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "Michael Mann", cli.Movie.Update.Director)
				assert.Equal(t, "Heat", cli.Movie.Update.Old)
				assert.Equal(t, "Heat (1995)", cli.Movie.Update.New)
				assert.Equal(t, "170 minutes", cli.Movie.Update.Runtime)
			},
		},
		{
			name:    "fetch movie without saving",
			args:    []string{"fetch", "movie", "Heat", "--no-save"},
			command: "fetch movie <title>",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "Heat", cli.Fetch.Movie.Title)
				assert.True(t, cli.Fetch.Movie.NoSave)
			},
		},
		{
			name:    "global flags",
			args:    []string{"--catalog", "shelf.yaml", "--cache-ttl", "1h", "director", "list"},
			command: "director list",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "shelf.yaml", cli.Catalog)
				assert.Equal(t, "1h", cli.CacheTTL)
			},
		},
		{
			name:    "export remote",
			args:    []string{"export", "--remote", "https://datasette.example.com", "--token", "abc"},
			command: "export",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "https://datasette.example.com", cli.Export.Remote)
				assert.Equal(t, "abc", cli.Export.Token)
				assert.Equal(t, "movie_player", cli.Export.Database)
			},
		},
		{
			name:    "cache invalidate",
			args:    []string{"cache", "invalidate", "omdb"},
			command: "cache invalidate <source>",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "omdb", cli.Cache.Invalidate.Source)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, ctx := parseCLI(t, tt.args...)
			assert.Equal(t, tt.command, ctx.Command())
			tt.check(t, cli)
		})
	}
}
