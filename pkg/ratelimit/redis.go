package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces the Redis counters.
const KeyPrefix = "colorgraph:ratelimit:"

// connectAttempts bounds the startup pings in NewRedisLimiter.
const connectAttempts = 3

// RedisLimiter keeps counters in Redis so every API instance shares the
// same quota. Each key is an INCR counter that expires with its window.
type RedisLimiter struct {
	client *redis.Client
	window Window
}

// NewRedisLimiter connects to the server at url, e.g.
// "redis://localhost:6379/0", and pings it with backoff.
func NewRedisLimiter(ctx context.Context, url string, w Window) (*RedisLimiter, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	err = RetryWithBackoff(ctx, connectAttempts, func() error {
		return Retryable(client.Ping(ctx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisLimiter{client: client, window: w}, nil
}

// NewRedisLimiterFromClient wraps an existing client without pinging it.
func NewRedisLimiterFromClient(client *redis.Client, w Window) (*RedisLimiter, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &RedisLimiter{client: client, window: w}, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := KeyPrefix + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("incr %s: %w", k, err)
	}
	if n == 1 {
		if err := l.client.PExpire(ctx, k, l.window.Period).Err(); err != nil {
			return Decision{}, fmt.Errorf("expire %s: %w", k, err)
		}
	}

	resetIn := l.window.Period
	if int(n) > l.window.Limit {
		ttl, err := l.client.PTTL(ctx, k).Result()
		if err != nil {
			return Decision{}, fmt.Errorf("pttl %s: %w", k, err)
		}
		if ttl < 0 {
			// counter lost its expiry; start a new window
			if err := l.client.PExpire(ctx, k, l.window.Period).Err(); err != nil {
				return Decision{}, fmt.Errorf("expire %s: %w", k, err)
			}
		} else {
			resetIn = ttl
		}
	}
	return decide(l.window, int(n), resetIn), nil
}

// Close closes the Redis client.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

var _ Limiter = (*RedisLimiter)(nil)
