// Package cache memoizes encoded coloring results in process, keyed by a
// hash of their inputs.
//
// Every algorithm is deterministic for a given graph, seed and option set,
// so the API can answer a repeated request without recoloring. Entries live
// only as long as the process; nothing is written to disk.
//
//   - [MemoryCache]: map with per-entry expiry
//   - [NullCache]: stores nothing, for disabling the memo
//
// Keys are built with [ColoringKey].
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long entries live when the caller does not say.
const DefaultTTL = 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was present and
	// unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
