// Package omdb provides a client for the OMDb API.
package omdb

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/2002hackerr/movie-player/internal/cache"
	"github.com/2002hackerr/movie-player/internal/errors"
	"github.com/2002hackerr/movie-player/internal/ratelimit"
)

const (
	defaultBaseURL = "https://www.omdbapi.com"
	// limitMessage is the error OMDb sends once the daily quota is spent
	limitMessage = "Request limit reached!"
)

// ErrMissingAPIKey is returned when the client has no API key configured.
var ErrMissingAPIKey = stdErrors.New("OMDB API key not configured")

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OMDb API client.
type Client struct {
	apiKey       string
	baseURL      string
	httpClient   HTTPDoer
	rateLimiter  *ratelimit.Limiter
	cache        *cache.CacheDB
	limitReached atomic.Bool
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// NewClient creates a new OMDb client.
// The free tier allows 1000 requests/day; the default limiter is 1 req/sec to be conservative.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rateLimiter: ratelimit.New("OMDB", 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the OMDb API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithRateLimiter replaces the default limiter. A nil limiter disables pacing.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		client.rateLimiter = limiter
	}
}

// WithCache enables response caching in the omdb_cache table.
func WithCache(c *cache.CacheDB) Option {
	return func(client *Client) {
		client.cache = c
	}
}

// FetchByTitle retrieves movie data from OMDb by exact title.
// A title OMDb doesn't know returns nil, nil.
func (c *Client) FetchByTitle(ctx context.Context, title string) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	slog.Debug("Fetching OMDB data by title", "title", title)

	params := url.Values{}
	params.Set("t", title)
	params.Set("type", "movie")
	params.Set("apikey", c.apiKey)
	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 512))
		if readErr != nil {
			slog.Warn("Failed to read error response body", "error", readErr)
		} else {
			var errorResp Response
			if json.Unmarshal(body, &errorResp) == nil && errorResp.Error != "" {
				if errorResp.Error == limitMessage {
					return nil, errors.NewRateLimitError("OMDB API request limit reached")
				}
				return nil, fmt.Errorf("OMDB API returned status %d for title %q: %s", resp.StatusCode, title, errorResp.Error)
			}
		}
		return nil, fmt.Errorf("OMDB API returned status %d for title %q", resp.StatusCode, title)
	}

	var omdbResp Response
	if err := json.NewDecoder(resp.Body).Decode(&omdbResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if omdbResp.Response == "False" {
		switch {
		case omdbResp.Error == limitMessage:
			return nil, errors.NewRateLimitError("OMDB API request limit reached")
		case strings.Contains(strings.ToLower(omdbResp.Error), "not found"):
			slog.Debug("Movie not found in OMDB", "title", title)
			return nil, nil
		}
		return nil, fmt.Errorf("OMDB API error: %s", omdbResp.Error)
	}

	if omdbResp.Title == "" {
		return nil, fmt.Errorf("invalid or empty response from OMDB API for title %q", title)
	}

	return &omdbResp, nil
}
