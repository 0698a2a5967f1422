package cache

import (
	"context"
	"time"
)

// DefaultTTL is applied when Set is called without a positive TTL.
const DefaultTTL = 10 * time.Minute

// Store is the caching capability used by services. The cache is strictly
// an optimization, never a source of truth: implementations must degrade
// every failure to a miss (Get) or a no-op (Set/Remove) so callers only
// ever observe latency, not errors. Returned errors are always nil and
// exist to keep call sites uniform.
type Store interface {
	// Get returns the stored bytes, or nil when the key is absent or the
	// backing store is unavailable.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value with the given TTL (DefaultTTL when ttl <= 0).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Remove deletes a single key.
	Remove(ctx context.Context, key string) error
	// RemoveByPattern deletes every key matching a glob-style pattern.
	// Invalidation call sites use exact-key Remove; this exists for
	// operational sweeps like "employees_*".
	RemoveByPattern(ctx context.Context, pattern string) error
}
