// Package cache provides the artifact cache used by the planning pipeline.
//
// The planning engine itself is purely functional and stateless; caching
// belongs to the calling layer, and this package is that layer's storage.
// Cached values are rendered artifacts and serialized layouts, keyed by a
// content hash of the inputs that produced them, so identical plan requests
// skip recomputation and re-rendering.
//
// Backends:
//   - FileCache: per-user on-disk cache for the CLI
//   - RedisCache: shared cache for multi-instance deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache is the minimal storage contract shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (0 means no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys from pipeline inputs. Implementations must be
// deterministic: equal inputs yield equal keys.
type Keyer interface {
	// LayoutKey keys a computed layout by the plan values that determine it.
	LayoutKey(parts ...any) string

	// ArtifactKey keys a rendered artifact by layout key, format, and style.
	ArtifactKey(layoutKey, format, style string) string
}

// DefaultKeyer hashes the input values with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (k *DefaultKeyer) LayoutKey(parts ...any) string {
	return hashKey("layout", parts...)
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(layoutKey, format, style string) string {
	return hashKey("artifact", layoutKey, format, style)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g. when
// several projects share one Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer whose keys all carry the given prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey implements Keyer.
func (k *ScopedKeyer) LayoutKey(parts ...any) string {
	return k.prefix + k.inner.LayoutKey(parts...)
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(layoutKey, format, style string) string {
	return k.prefix + k.inner.ArtifactKey(layoutKey, format, style)
}
