package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/2002hackerr/movie-player/internal/datastore"
)

// ExportCmd writes the catalog to the directors and movies tables
type ExportCmd struct {
	DB       string `help:"SQLite database file; overrides datastore.dbfile"`
	Remote   string `help:"Base URL of a Datasette instance with the insert plugin"`
	Token    string `help:"API token for the remote Datasette; overrides datastore.token"`
	Database string `help:"Database name for remote inserts" default:"movie_player"`
}

func (e *ExportCmd) Run() error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	store, target := e.store()
	stats, err := datastore.Export(store, e.Database, cat.Snapshot())
	if err != nil {
		return fmt.Errorf("export to %s failed: %w", target, err)
	}

	_, _ = fmt.Fprintf(stdout, "Exported %d directors and %d movies to '%s'.\n", stats.Directors, stats.Movies, target)
	if stats.Merged {
		_, _ = fmt.Fprintln(stdout, "Rows were added or overwritten only; directors and movies removed since an earlier export may remain.")
	}
	return nil
}

func (e *ExportCmd) store() (datastore.Store, string) {
	if e.Remote != "" {
		token := e.Token
		if token == "" {
			token = viper.GetString("datastore.token")
		}
		return datastore.NewDatasetteClient(e.Remote, token), e.Remote
	}

	dbPath := e.DB
	if dbPath == "" {
		dbPath = viper.GetString("datastore.dbfile")
	}
	return datastore.NewSQLiteStore(dbPath), dbPath
}
