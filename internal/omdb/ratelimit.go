package omdb

import "log/slog"

// markRateLimitReached stops further requests from this client.
// It logs a warning on the first call and subsequent calls are no-ops.
func (c *Client) markRateLimitReached() {
	if c.limitReached.CompareAndSwap(false, true) {
		slog.Warn("OMDB API rate limit reached; skipping further OMDB requests for this run")
	}
}

// RequestsAllowed returns true until OMDb has reported its request limit.
func (c *Client) RequestsAllowed() bool {
	return !c.limitReached.Load()
}

// ResetRateLimit allows requests again after the limit was reached.
func (c *Client) ResetRateLimit() {
	c.limitReached.Store(false)
}
