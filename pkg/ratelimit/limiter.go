// Package ratelimit provides per-key request counters with a 60-second wall
// clock window. The in-memory limiter serves single-replica deployments; the
// Redis limiter shares state across replicas.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether more events from key are admitted within the
// current window.
type Limiter interface {
	// Allow consumes one slot for key and reports whether it was admitted.
	Allow(ctx context.Context, key string) (bool, error)
	// AllowN consumes n slots for key in one step, so a batch of events is
	// charged per event. n <= 0 is admitted without consuming anything.
	AllowN(ctx context.Context, key string, n int) (bool, error)
}

// MemoryLimiter is a process-local fixed-window limiter partitioned by key.
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count   int
	started time.Time
}

// NewMemoryLimiter creates a limiter admitting limit events per window per
// key.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.AllowN(ctx, key, 1)
}

// AllowN implements Limiter. A rejected batch consumes nothing, so a smaller
// batch may still be admitted within the same window.
func (l *MemoryLimiter) AllowN(_ context.Context, key string, n int) (bool, error) {
	if n <= 0 {
		return true, nil
	}
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[key]
	if b == nil || now.Sub(b.started) >= l.window {
		b = &bucket{started: now}
		l.buckets[key] = b
		l.pruneLocked(now)
	}
	if b.count+n > l.limit {
		return false, nil
	}
	b.count += n
	return true, nil
}

// pruneLocked drops expired buckets. Callers must hold l.mu.
func (l *MemoryLimiter) pruneLocked(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.started) >= l.window {
			delete(l.buckets, key)
		}
	}
}
