// Package cache stores rendered attribute and image documents.
//
// Generators are deterministic, so a cached document never goes stale as
// long as its key covers everything that shaped it. Keys are derived from
// the engine fingerprint and the index by a [Keyer]; changing the engine,
// its format version or its data produces new keys and old entries simply
// age out.
//
// Backends:
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [RedisCache]: shared cache for several server processes
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	TTLAttributes = 7 * 24 * time.Hour
	TTLImage      = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}
