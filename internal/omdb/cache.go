package omdb

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/2002hackerr/movie-player/internal/cache"
	"github.com/2002hackerr/movie-player/internal/errors"
)

// CachedFetchByTitle is FetchByTitle through the omdb_cache table.
// Once OMDb reports its request limit, every later call fails fast with a RateLimitError.
// Misses (nil responses) are not cached.
func (c *Client) CachedFetchByTitle(ctx context.Context, title string) (*Response, bool, error) {
	if !c.RequestsAllowed() {
		return nil, false, errors.NewRateLimitError("OMDB API request limit reached")
	}

	cacheKey := "title_" + strings.ToLower(strings.TrimSpace(title))
	data, fromCache, err := cache.GetOrFetch(c.cache, cache.OMDBTable, cacheKey, func() (*Response, error) {
		return c.FetchByTitle(ctx, title)
	}, func(resp *Response) bool {
		return resp != nil
	})

	if errors.IsRateLimitError(err) {
		c.markRateLimitReached()
	}
	if err != nil {
		return nil, false, err
	}

	if !fromCache && data != nil {
		c.seedCacheByID(data)
	}
	return data, fromCache, nil
}

// seedCacheByID stores the response under its IMDb ID as well, so a title
// variant resolving to the same movie is recognisable in the cache.
func (c *Client) seedCacheByID(resp *Response) {
	if c.cache == nil || resp.ImdbID == "" {
		return
	}

	jsonData, err := json.Marshal(resp)
	if err != nil {
		slog.Warn("Failed to marshal data for cache seeding", "imdb_id", resp.ImdbID, "error", err)
		return
	}

	if err := c.cache.Set(cache.OMDBTable, resp.ImdbID, string(jsonData)); err != nil {
		slog.Warn("Failed to seed OMDB cache by IMDb ID", "imdb_id", resp.ImdbID, "error", err)
	}
}
