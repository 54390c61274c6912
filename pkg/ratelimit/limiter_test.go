package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_EnforcesLimitPerKey(t *testing.T) {
	l := NewMemoryLimiter(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "device-1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other keys are unaffected.
	ok, err = l.Allow(ctx, "device-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_WindowRollsOver(t *testing.T) {
	l := NewMemoryLimiter(1, 20*time.Millisecond)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "device-1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Allow(ctx, "device-1")
	require.NoError(t, err)
	require.False(t, ok)

	time.Sleep(30 * time.Millisecond)

	ok, err = l.Allow(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_AllowNChargesPerSlot(t *testing.T) {
	l := NewMemoryLimiter(100, time.Minute)
	ctx := context.Background()

	ok, err := l.AllowN(ctx, "device-1", 60)
	require.NoError(t, err)
	assert.True(t, ok)

	// 60 + 60 would overshoot the limit.
	ok, err = l.AllowN(ctx, "device-1", 60)
	require.NoError(t, err)
	assert.False(t, ok)

	// The rejected batch consumed nothing, so a smaller one still fits.
	ok, err = l.AllowN(ctx, "device-1", 40)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.AllowN(ctx, "device-1", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.AllowN(ctx, "device-1", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_DefaultWindow(t *testing.T) {
	l := NewMemoryLimiter(1, 0)
	assert.Equal(t, time.Minute, l.window)
}

func TestRedisLimiter_EnforcesLimitPerKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	l := NewRedisLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "org-1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "org-1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "org-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_AllowNChargesPerSlot(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	l := NewRedisLimiter(client, 100, time.Minute)
	ctx := context.Background()

	ok, err := l.AllowN(ctx, "org-1", 60)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.AllowN(ctx, "org-1", 60)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.AllowN(ctx, "org-1", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_CountersExpireWithTheWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	l := NewRedisLimiter(client, 1, time.Minute)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "org-1")
	require.NoError(t, err)
	require.True(t, ok)

	keys := client.Keys(ctx, "ghostd:rate:org-1:*").Val()
	require.Len(t, keys, 1)
	ttl := client.TTL(ctx, keys[0]).Val()
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	// Advancing past the window expires the counter.
	mr.FastForward(2 * time.Minute)
	assert.Empty(t, client.Keys(ctx, "ghostd:rate:org-1:*").Val())
}

func TestRedisLimiter_PropagatesBackendErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	l := NewRedisLimiter(client, 1, time.Minute)
	_, err := l.Allow(context.Background(), "org-1")
	assert.Error(t, err)
}
