// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and carries no dependency on a specific
// backend. Consumers register hooks at startup to receive events about
// coloring runs, Iterated Greedy iterations, and API requests.
//
// # Architecture
//
//   - Hook interfaces per event category
//   - No-op default implementations
//   - Registration of custom implementations at startup
//
// Hooks are registered by main, never by library packages, so the coloring
// core stays free of observability imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetColoringHooks(&myColoringHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// The harness calls hooks around every run:
//
//	observability.Coloring().OnRunStart(ctx, "DSatur", g.Len())
//	// ... color ...
//	observability.Coloring().OnRunComplete(ctx, "DSatur", colors, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Coloring Hooks
// =============================================================================

// ColoringHooks receives events from the coloring harness.
type ColoringHooks interface {
	// Run events
	OnRunStart(ctx context.Context, algorithm string, vertices int)
	OnRunComplete(ctx context.Context, algorithm string, colors int, duration time.Duration, err error)

	// OnIteration records one Iterated Greedy step.
	OnIteration(ctx context.Context, strategy string, index, colors, stale int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopColoringHooks is a no-op implementation of ColoringHooks.
type NoopColoringHooks struct{}

func (NoopColoringHooks) OnRunStart(context.Context, string, int)                          {}
func (NoopColoringHooks) OnRunComplete(context.Context, string, int, time.Duration, error) {}
func (NoopColoringHooks) OnIteration(context.Context, string, int, int, int)               {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                   {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	coloringHooks ColoringHooks = NoopColoringHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetColoringHooks registers custom coloring hooks.
// This should be called once at application startup before any runs.
func SetColoringHooks(h ColoringHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		coloringHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Coloring returns the registered coloring hooks.
func Coloring() ColoringHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return coloringHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	coloringHooks = NoopColoringHooks{}
	httpHooks = NoopHTTPHooks{}
}
