package tmdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/2002hackerr/movie-player/internal/cache"
)

// CachedPeople wraps a person search for caching.
type CachedPeople struct {
	Results []Person `json:"results"`
}

// CachedSearchPerson performs a cached person search.
// Cache key format: person_{normalized_query}
// Empty results are not cached so a later run can pick up new entries.
func (c *Client) CachedSearchPerson(ctx context.Context, name string) ([]Person, bool, error) {
	cacheKey := "person_" + normalizeQuery(name)

	result, fromCache, err := cache.GetOrFetch(c.cache, cache.TMDBTable, cacheKey, func() (*CachedPeople, error) {
		people, searchErr := c.SearchPerson(ctx, name)
		if searchErr != nil {
			return nil, searchErr
		}
		return &CachedPeople{Results: people}, nil
	}, func(result *CachedPeople) bool {
		return result != nil && len(result.Results) > 0
	})
	if err != nil {
		return nil, false, err
	}

	return result.Results, fromCache, nil
}

// CachedGetMovieCredits fetches a person's movie credits through the cache.
// Cache key format: credits_{person_id}
func (c *Client) CachedGetMovieCredits(ctx context.Context, personID int) (*MovieCredits, bool, error) {
	cacheKey := fmt.Sprintf("credits_%d", personID)

	return cache.GetOrFetch(c.cache, cache.TMDBTable, cacheKey, func() (*MovieCredits, error) {
		return c.GetMovieCredits(ctx, personID)
	}, nil)
}

// normalizeQuery normalizes a query string for use as a cache key.
func normalizeQuery(query string) string {
	// Convert to lowercase and replace spaces with underscores
	normalized := strings.ToLower(strings.TrimSpace(query))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	// Remove special characters that might cause issues
	normalized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, normalized)
	return normalized
}
