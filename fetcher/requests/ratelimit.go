package requests

import (
	"context"
	"sync"
	"time"

	"lolladder/pkg/config"
)

// Single riot rate limiting.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
// Shared by every request made with the same API key.
type RateLimiter struct {
	windows []*RiotLimit
	mu      sync.Mutex
}

// Create a instance of the rate limiter.
func CreateRateLimiter(limits config.LimitsConfiguration) *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*RiotLimit{
			{
				limit:         limits.Lower.Count,
				resetInterval: limits.Lower.ResetInterval,
				lastReset:     now,
			},
			{
				limit:         limits.Higher.Count,
				resetInterval: limits.Higher.ResetInterval,
				lastReset:     now,
			},
		},
	}
}

// Reset the count.
func (r *RateLimiter) resetCounts(now time.Time) {
	// Loop through each window and verify if can reset.
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// Verify if a request can be made now and reserve it.
// Otherwise return how long until the slowest full window resets.
func (r *RateLimiter) tryAcquire() (bool, time.Duration) {
	// Locks the limiter.
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.resetCounts(now)

	if r.checkLimits() {
		r.incrementCounts()
		return true, 0
	}

	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return false, waitTime
}

// Wait until a request fits in every window, or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		ok, waitTime := r.tryAcquire()
		if ok {
			return nil
		}

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
