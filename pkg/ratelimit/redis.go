package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter backed by a shared Redis instance,
// for multi-replica deployments where every replica must see the same
// per-device counters. The algorithm matches MemoryLimiter; only the state
// layer changes.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ghostd:rate:",
	}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.AllowN(ctx, key, 1)
}

// AllowN implements Limiter. The counter key is bucketed to the window start
// so it expires with the window; INCRBY+EXPIRE keeps the operation atomic
// enough for a rate valve (the first increment sets the TTL).
func (l *RedisLimiter) AllowN(ctx context.Context, key string, n int) (bool, error) {
	if n <= 0 {
		return true, nil
	}
	windowID := time.Now().Unix() / int64(l.window.Seconds())
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, windowID)

	count, err := l.client.IncrBy(ctx, redisKey, int64(n)).Result()
	if err != nil {
		return false, fmt.Errorf("rate limiter incr failed: %w", err)
	}
	if count == int64(n) {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limiter expire failed: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}
