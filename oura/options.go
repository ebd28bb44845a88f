package oura

import (
	"net/http"
	"strings"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client used for requests.
// If this is not provided, a default http.Client with a 30 second timeout
// is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the endpoint chosen by the credential variant.
// This is primarily useful for testing or connecting through a proxy.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimiting enables client-side token-bucket throttling sized to the
// documented Oura quota (5000 requests per 5 minutes). Disabled by default:
// the client surfaces HTTP 429 as a rate-limit error and never retries.
func WithRateLimiting(enabled bool) Option {
	return func(c *Client) {
		c.rateLimiter.SetAutoLimiting(enabled)
	}
}
