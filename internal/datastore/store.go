// Package datastore exports the catalog to SQLite or a remote Datasette instance.
package datastore

import "errors"

// ErrClearUnsupported is returned by ClearTable when the target cannot delete
// rows. Exports to such targets only add or overwrite rows by id.
var ErrClearUnsupported = errors.New("datastore: target cannot clear tables")

// Store defines the interface for export targets
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// ClearTable removes previously exported rows from the table, or returns ErrClearUnsupported
	ClearTable(database string, table string) error

	// BatchInsert inserts multiple records into the specified table
	BatchInsert(database string, table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}

// Export table names
const (
	DirectorsTable = "directors"
	MoviesTable    = "movies"
)

// validTables whitelists table names interpolated into SQL
var validTables = map[string]bool{
	DirectorsTable: true,
	MoviesTable:    true,
}

// DirectorsSchema holds one row per director in catalog order
const DirectorsSchema = `
CREATE TABLE IF NOT EXISTS directors (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	movie_count INTEGER NOT NULL
)`

// MoviesSchema holds one row per movie; position is 1-based within the director
const MoviesSchema = `
CREATE TABLE IF NOT EXISTS movies (
	id INTEGER PRIMARY KEY,
	director_id INTEGER NOT NULL REFERENCES directors(id),
	director TEXT NOT NULL,
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	runtime TEXT NOT NULL
)`
