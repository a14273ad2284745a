package cache

// SQL schemas for cache tables
// All cache tables use "cache_key" as the primary key column for consistency

// Table names for the metadata sources
const (
	OMDBTable = "omdb_cache"
	TMDBTable = "tmdb_cache"
)

// OMDBCacheSchema defines the schema for OMDB movie lookups by title
const OMDBCacheSchema = `
CREATE TABLE IF NOT EXISTS omdb_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_omdb_cached_at ON omdb_cache(cached_at);
`

// TMDBCacheSchema defines the schema for TMDB person searches and credits
const TMDBCacheSchema = `
CREATE TABLE IF NOT EXISTS tmdb_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tmdb_cached_at ON tmdb_cache(cached_at);
`

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	OMDBCacheSchema,
	TMDBCacheSchema,
}

// ValidCacheTableNames is the whitelist of allowed cache table names
// Used to prevent SQL injection when interpolating table names
var ValidCacheTableNames = map[string]bool{
	OMDBTable: true,
	TMDBTable: true,
}
