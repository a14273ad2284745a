package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimitedNeverBlocks(t *testing.T) {
	limiter := Unlimited("test")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 100; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
	assert.Equal(t, "test", limiter.Name())
}

func TestWaitHonoursCancelledContext(t *testing.T) {
	limiter := Every("slow", time.Hour, 1)

	ctx := context.Background()
	require.NoError(t, limiter.Wait(ctx), "first request uses the burst")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	err := limiter.Wait(cancelled)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait for slow")
}

func TestNilLimiterIsNoop(t *testing.T) {
	var limiter *Limiter
	assert.NoError(t, limiter.Wait(context.Background()))
}

func TestNewBurstEqualsRate(t *testing.T) {
	limiter := New("burst", 4)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
}
