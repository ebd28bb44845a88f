package oura

import (
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// rateLimiter encapsulates optional local token-bucket limiting sized to
// Oura's documented quota (5000 requests per 5 minutes).
type rateLimiter struct {
	limiter        *rate.Limiter
	isAutoLimiting atomic.Bool
}

// newRateLimiter initializes a limiter matching the vendor quota. Local
// limiting starts disabled: the core contract is to surface HTTP 429 as an
// error, not to schedule around it.
func newRateLimiter() *rateLimiter {
	// 5000 requests per 5 minutes = 5000 / 300 requests per second
	limit := rate.Limit(5000.0 / 300.0)

	return &rateLimiter{
		limiter: rate.NewLimiter(limit, 5000),
	}
}

// Wait blocks until a token is available or the context is canceled.
func (rl *rateLimiter) Wait(ctx context.Context) error {
	if !rl.isAutoLimiting.Load() {
		return nil
	}
	return rl.limiter.Wait(ctx)
}

// SetAutoLimiting enables or disables the local limiter.
func (rl *rateLimiter) SetAutoLimiting(enabled bool) {
	rl.isAutoLimiting.Store(enabled)
}
