package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
)

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		w       Window
		wantErr bool
	}{
		{"valid", Window{Limit: 10, Period: time.Minute}, false},
		{"zero limit", Window{Limit: 0, Period: time.Minute}, true},
		{"zero period", Window{Limit: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !cerrors.Is(err, cerrors.ErrCodeInvalidConfig) {
				t.Errorf("code = %q, want INVALID_CONFIG", cerrors.GetCode(err))
			}
		})
	}
}

func TestMemoryLimiterWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l, err := NewMemoryLimiter(Window{Limit: 2, Period: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	l.now = func() time.Time { return now }

	for i, wantRemaining := range []int{1, 0} {
		d, err := l.Allow(ctx, "client")
		if err != nil || !d.Allowed {
			t.Fatalf("request %d refused: %+v, %v", i, d, err)
		}
		if d.Remaining != wantRemaining {
			t.Errorf("request %d: remaining = %d, want %d", i, d.Remaining, wantRemaining)
		}
	}

	now = now.Add(20 * time.Second)
	d, _ := l.Allow(ctx, "client")
	if d.Allowed {
		t.Fatal("third request in the window should be refused")
	}
	if d.RetryAfter != 40*time.Second {
		t.Errorf("RetryAfter = %v, want 40s", d.RetryAfter)
	}
	var rl *cerrors.RateLimitedError
	if !errors.As(d.Err(), &rl) || rl.Seconds() != 40 {
		t.Errorf("Err() = %v, want a 40s RateLimitedError", d.Err())
	}

	if d, _ := l.Allow(ctx, "other"); !d.Allowed {
		t.Error("keys should have separate quotas")
	}

	now = now.Add(time.Minute)
	if d, _ := l.Allow(ctx, "client"); !d.Allowed || d.Remaining != 1 {
		t.Errorf("a new window should reset the quota, got %+v", d)
	}
}

func TestMemoryLimiterPurgesFinishedWindows(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l, _ := NewMemoryLimiter(Window{Limit: 1, Period: time.Second})
	l.now = func() time.Time { return now }

	for i := range purgeThreshold + 1 {
		_, _ = l.Allow(ctx, fmt.Sprintf("client-%d", i))
	}
	now = now.Add(time.Hour)
	_, _ = l.Allow(ctx, "fresh")

	if len(l.counters) != 1 {
		t.Errorf("tracked keys = %d, want 1 after purge", len(l.counters))
	}
}

func TestDecisionErrAllowed(t *testing.T) {
	if err := (Decision{Allowed: true}).Err(); err != nil {
		t.Errorf("allowed decision Err() = %v", err)
	}
}

func TestNewRedisLimiterRejectsBadURL(t *testing.T) {
	_, err := NewRedisLimiter(context.Background(), "http://localhost:6379", Window{Limit: 1, Period: time.Second})
	if err == nil {
		t.Error("expected an error for a non-redis url")
	}
}

func TestNewRedisLimiterValidatesWindow(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	_, err := NewRedisLimiterFromClient(client, Window{})
	if !cerrors.Is(err, cerrors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestRedisLimiterUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	l, err := NewRedisLimiterFromClient(client, Window{Limit: 1, Period: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	if _, err := l.Allow(context.Background(), "client"); err == nil {
		t.Error("Allow against a closed port should fail")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("retries retryable errors", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, 3, func() error {
			calls++
			return Retryable(boom)
		})
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
		if err != boom {
			t.Errorf("err = %v, want the unwrapped error", err)
		}
	})

	t.Run("stops on success", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, 3, func() error {
			calls++
			if calls < 2 {
				return Retryable(boom)
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Errorf("err %v after %d calls", err, calls)
		}
	})

	t.Run("does not retry plain errors", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, 3, func() error {
			calls++
			return boom
		})
		if calls != 1 || !errors.Is(err, boom) {
			t.Errorf("err %v after %d calls", err, calls)
		}
	})

	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
}
