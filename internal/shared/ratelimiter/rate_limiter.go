// Package ratelimiter paces repeated upstream calls, e.g. between symbols
// of a batch push run.
package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiterInterface limits the frequency of an operation.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter enforces an upper bound of calls per interval by sleeping
// until the window resets.
type RateLimiter struct {
	limit     int           // calls allowed per interval
	interval  time.Duration // window that resets the counter
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current window has capacity again.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Info("rate limit reached, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
