// Package cache provides byte-level caching of derived mesh data.
//
// Renumbering a large mesh is cheap compared to coloring it, but pipelines
// re-run the same inputs often; caching the renumbered mesh keyed by a
// content hash of the colored input makes repeated runs free. The package
// defines a small [Cache] interface with three backends:
//
//   - [FileCache]: directory-backed, for CLI usage
//   - [RedisCache]: redis-backed, for shared or multi-process usage
//   - [NullCache]: no-op, for tests and --no-cache runs
//
// Keys are derived with [MeshKey], a SHA-256 hash over the serialized
// colored mesh, so any change to coordinates, connectivity, or coloring
// produces a different key.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with a per-entry TTL.
// A TTL of 0 means the entry never expires. Implementations report a miss
// with (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	// Get retrieves a value from the cache.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value in the cache.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
