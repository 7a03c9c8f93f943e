package ratelimit

import (
	"context"
	"sync"
	"time"
)

// purgeThreshold is the number of tracked keys above which finished windows
// are dropped.
const purgeThreshold = 1024

// MemoryLimiter keeps one counter per key in process.
type MemoryLimiter struct {
	window   Window
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

type counter struct {
	count   int
	resetAt time.Time
}

// NewMemoryLimiter creates an in-process limiter for w.
func NewMemoryLimiter(w Window) (*MemoryLimiter, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &MemoryLimiter{window: w, counters: make(map[string]*counter), now: time.Now}, nil
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.counters) > purgeThreshold {
		for k, c := range l.counters {
			if !now.Before(c.resetAt) {
				delete(l.counters, k)
			}
		}
	}

	c, ok := l.counters[key]
	if !ok || !now.Before(c.resetAt) {
		c = &counter{resetAt: now.Add(l.window.Period)}
		l.counters[key] = c
	}
	c.count++
	return decide(l.window, c.count, c.resetAt.Sub(now)), nil
}

var _ Limiter = (*MemoryLimiter)(nil)
