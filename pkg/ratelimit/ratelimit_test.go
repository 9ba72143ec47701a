package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRateLimiter(t *testing.T) {
	ctx := context.Background()
	l := NewLocalRateLimiter()
	limit := PerMinute(3)

	for i := 0; i < 3; i++ {
		res, err := l.Allow(ctx, "login:1.2.3.4", limit)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "attempt %d", i)
	}

	res, err := l.Allow(ctx, "login:1.2.3.4", limit)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Greater(t, res.RetryAfter, time.Duration(0))

	res, err = l.Allow(ctx, "login:5.6.7.8", limit)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestLocalRateLimiterInvalidLimit(t *testing.T) {
	_, err := NewLocalRateLimiter().Allow(context.Background(), "k", Limit{})
	assert.Error(t, err)
}

func TestLocalRateLimiterPrune(t *testing.T) {
	ctx := context.Background()
	l := NewLocalRateLimiter()

	_, err := l.Allow(ctx, "login:busy", PerMinute(3))
	require.NoError(t, err)
	_, err = l.Allow(ctx, "login:idle", Limit{Rate: 1000, Period: time.Second, Burst: 1})
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())

	require.Eventually(t, func() bool { return l.Prune() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 0, l.Prune())
}
