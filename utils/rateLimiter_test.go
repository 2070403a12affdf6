package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterFirstCallIsImmediate(t *testing.T) {
	limiter := NewRateLimiter(time.Second)

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiterEnforcesMinimumInterval(t *testing.T) {
	limiter := NewRateLimiter(100 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx))
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx))

	// Allow a little scheduling slack below the configured interval
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestRateLimiterSpacesConcurrentCallers(t *testing.T) {
	limiter := NewRateLimiter(50 * time.Millisecond)

	start := time.Now()
	done := make(chan time.Duration, 3)
	for i := 0; i < 3; i++ {
		go func() {
			_ = limiter.Wait(context.Background())
			done <- time.Since(start)
		}()
	}

	var last time.Duration
	for i := 0; i < 3; i++ {
		last = max(last, <-done)
	}

	// Third caller cannot be released before two full intervals
	assert.GreaterOrEqual(t, last, 90*time.Millisecond)
}

func TestRateLimiterHonorsContextCancellation(t *testing.T) {
	limiter := NewRateLimiter(time.Minute)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
