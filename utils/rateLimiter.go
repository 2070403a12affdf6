package utils

import (
	"context"
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between calls. Each client owns
// its own limiter, so the throttle state is never shared across instances.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall time.Time
}

func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous call. The mutex is held while sleeping, so concurrent callers
// are released one at a time, each a full interval apart.
func (l *RateLimiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if wait := l.interval - time.Since(l.lastCall); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	l.lastCall = time.Now()
	return nil
}
