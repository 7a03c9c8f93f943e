package cli

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/colorgraph/pkg/cache"
	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/ratelimit"
)

func TestNewMemo(t *testing.T) {
	m, ok := newMemo(serveOptions{memo: true, memoEntries: 8}).(*cache.MemoryCache)
	if !ok {
		t.Fatal("newMemo did not return a MemoryCache")
	}
	if m.MaxEntries != 8 {
		t.Errorf("MaxEntries = %d, want 8", m.MaxEntries)
	}

	if _, ok := newMemo(serveOptions{}).(cache.NullCache); !ok {
		t.Error("newMemo with memo off should return a NullCache")
	}
}

func TestNewLimiter(t *testing.T) {
	ctx := context.Background()

	l, closer, err := newLimiter(ctx, serveOptions{})
	if err != nil || l != nil || closer != nil {
		t.Errorf("disabled limiter = (%v, %v, %v), want all nil", l, closer, err)
	}

	l, closer, err = newLimiter(ctx, serveOptions{rateLimit: 5, rateWindow: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(*ratelimit.MemoryLimiter); !ok {
		t.Errorf("limiter = %T, want *ratelimit.MemoryLimiter", l)
	}
	if closer != nil {
		t.Error("memory limiter should not need closing")
	}
}

func TestNewLimiterInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts serveOptions
		code cerrors.Code
	}{
		{"zero window", serveOptions{rateLimit: 5}, cerrors.ErrCodeInvalidConfig},
		{"bad redis url", serveOptions{rateLimit: 5, rateWindow: time.Minute, redisURL: "not-a-url"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := newLimiter(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.code != "" && !cerrors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
