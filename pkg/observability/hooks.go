// Package observability provides hooks for metrics and logging.
//
// The core packages stay free of metrics backends; consumers register hook
// implementations at startup and the server emits events through them. The
// bundled Prometheus collectors in internal/server are one such
// implementation.
//
// Register hooks once at application startup:
//
//	observability.SetResolveHooks(&myResolveHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
package observability

import (
	"context"
	"sync"
	"time"
)

// ResolveHooks receives events from resolution and repository scans.
type ResolveHooks interface {
	// OnResolveStart records the beginning of an analysis.
	OnResolveStart(ctx context.Context, coordinate string)

	// OnResolveComplete records a finished analysis with result sizes.
	OnResolveComplete(ctx context.Context, coordinate string, transitive, conflicts int, duration time.Duration, err error)

	// OnScanComplete records a repository-wide scan (dependents, artifacts).
	OnScanComplete(ctx context.Context, kind string, matches int, duration time.Duration, err error)
}

// CacheHooks receives events from response cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(context.Context, string) {}
func (NoopResolveHooks) OnResolveComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopResolveHooks) OnScanComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	resolveHooks ResolveHooks = NoopResolveHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetResolveHooks registers custom resolve hooks. Call once at startup
// before serving requests.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Call once at startup before
// serving requests.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults. Primarily for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolveHooks = NoopResolveHooks{}
	cacheHooks = NoopCacheHooks{}
}
