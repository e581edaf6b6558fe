// Package cache provides response caching for repository analyses.
//
// Resolution reports are pure functions of the repository contents, so the
// server caches serialized responses keyed by query parameters. Three
// backends are provided: an in-process file cache for single-node CLI and
// server use, a Redis cache for shared deployments, and a null cache that
// disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized responses. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get returns the cached bytes for key. The second return is false on
	// a miss; an error means the backend failed, not that the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResolveKeyOpts are the analysis parameters that shape a resolution
// response and therefore its cache key.
type ResolveKeyOpts struct {
	Transitive bool
	MaxDepth   int
}

// Keyer builds cache keys for the query surfaces. Keys embed every
// parameter that changes the response.
type Keyer interface {
	ResolveKey(coordinate string, opts ResolveKeyOpts) string
	TreeKey(coordinate string, maxDepth int) string
	VersionsKey(group, artifact, sort string) string
	DependentsKey(group, artifact, version string, limit int) string
}

// DefaultKeyer hashes query parameters into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

func (k *DefaultKeyer) ResolveKey(coordinate string, opts ResolveKeyOpts) string {
	return hashKey("resolve", coordinate, opts.Transitive, opts.MaxDepth)
}

func (k *DefaultKeyer) TreeKey(coordinate string, maxDepth int) string {
	return hashKey("tree", coordinate, maxDepth)
}

func (k *DefaultKeyer) VersionsKey(group, artifact, sort string) string {
	return hashKey("versions", group, artifact, sort)
}

func (k *DefaultKeyer) DependentsKey(group, artifact, version string, limit int) string {
	return hashKey("dependents", group, artifact, version, limit)
}

var _ Keyer = (*DefaultKeyer)(nil)
