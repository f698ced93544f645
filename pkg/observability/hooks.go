// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about mesh renumbering and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain loggers, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenumberHooks(&myRenumberHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Renumber().OnStart(numCells, numVertices, numColors)
//	// ... renumber ...
//	observability.Renumber().OnComplete(numCells, numVertices, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Renumber Hooks
// =============================================================================

// RenumberHooks receives events from mesh renumbering operations.
type RenumberHooks interface {
	// OnStart records the beginning of a renumbering operation.
	OnStart(numCells, numVertices, numColors int)

	// OnConnectivityCleared records a derived incidence relation (d0, d1)
	// being dropped because renumbering invalidates it.
	OnConnectivityCleared(d0, d1 int)

	// OnComplete records the end of a renumbering operation, successful
	// or not.
	OnComplete(numCells, numVertices int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenumberHooks is a no-op implementation of RenumberHooks.
type NoopRenumberHooks struct{}

func (NoopRenumberHooks) OnStart(int, int, int)                     {}
func (NoopRenumberHooks) OnConnectivityCleared(int, int)            {}
func (NoopRenumberHooks) OnComplete(int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renumberHooks RenumberHooks = NoopRenumberHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetRenumberHooks registers custom renumber hooks.
// This should be called once at application startup before any renumbering.
func SetRenumberHooks(h RenumberHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renumberHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Renumber returns the registered renumber hooks.
func Renumber() RenumberHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renumberHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renumberHooks = NoopRenumberHooks{}
	cacheHooks = NoopCacheHooks{}
}
