// Package ratelimit throttles API clients with fixed-window counters.
//
// A [Window] allows Limit requests per Period for each key, typically a
// client address. Two limiters implement it:
//
//   - [MemoryLimiter]: counters in process, for a single API instance
//   - [RedisLimiter]: counters in Redis, shared by every instance behind a
//     load balancer
package ratelimit

import (
	"context"
	"time"

	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
)

// Window is the quota: Limit requests per Period.
type Window struct {
	Limit  int
	Period time.Duration
}

// Validate rejects non-positive limits and periods with INVALID_CONFIG.
func (w Window) Validate() error {
	if err := cerrors.ValidatePositive("rate_limit", w.Limit); err != nil {
		return err
	}
	if w.Period <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "rate_window needs to be positive, got %v", w.Period)
	}
	return nil
}

// Decision is the outcome of one [Limiter.Allow] call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // set when not allowed
}

// Err returns a RateLimitedError for a refused decision and nil otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &cerrors.RateLimitedError{RetryAfter: d.RetryAfter}
}

// Limiter counts one request for key and decides whether it may proceed.
// Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// decide builds the decision for the count-th request of a window that
// resets after resetIn.
func decide(w Window, count int, resetIn time.Duration) Decision {
	d := Decision{
		Allowed:   count <= w.Limit,
		Limit:     w.Limit,
		Remaining: max(w.Limit-count, 0),
	}
	if !d.Allowed {
		d.RetryAfter = max(resetIn, 0)
	}
	return d
}
