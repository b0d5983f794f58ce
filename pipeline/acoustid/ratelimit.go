package acoustid

import (
	"context"
	"sync"
	"time"
)

// RateLimiter implements a sliding window rate limiter. The public AcoustID
// endpoints allow three requests per second per application; the limiter
// waits proactively instead of burning retries on 429 responses.
type RateLimiter struct {
	mu           sync.Mutex
	requestTimes []time.Time
	maxRequests  int
	windowSize   time.Duration
	enabled      bool
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(enabled bool, maxRequests int, windowSeconds float64) *RateLimiter {
	return &RateLimiter{
		requestTimes: make([]time.Time, 0),
		maxRequests:  maxRequests,
		windowSize:   time.Duration(windowSeconds * float64(time.Second)),
		enabled:      enabled,
	}
}

// WaitIfNeeded blocks until a request slot is available, respecting context
// cancellation.
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	if !rl.enabled {
		return nil
	}

	for {
		rl.mu.Lock()
		now := time.Now()
		windowStart := now.Add(-rl.windowSize)

		valid := rl.requestTimes[:0]
		for _, t := range rl.requestTimes {
			if t.After(windowStart) {
				valid = append(valid, t)
			}
		}
		rl.requestTimes = valid

		if len(rl.requestTimes) < rl.maxRequests {
			rl.requestTimes = append(rl.requestTimes, now)
			rl.mu.Unlock()
			return nil
		}

		oldest := rl.requestTimes[0]
		wait := rl.windowSize - now.Sub(oldest)
		rl.mu.Unlock()

		if wait <= 0 {
			// Oldest slot expired, re-check immediately
			continue
		}

		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		} else {
			time.Sleep(wait)
		}
	}
}
