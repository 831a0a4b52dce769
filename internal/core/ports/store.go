// Package ports provides domain-centric interfaces for external dependencies.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern,
// allowing business logic to remain independent of infrastructure concerns.
package ports

import (
	"context"
	"time"
)

// KeyValueStore is the capability the engine needs from persistence: a
// key-value store with TTL semantics. Both the result cache and the history
// log are key families on top of it. The store is optional; when absent the
// engine degrades to stateless per-call analysis.
//
// Implementations must support concurrent reads and writes from multiple
// callers. The engine relies on the store's own atomicity guarantees and
// does no client-side locking.
type KeyValueStore interface {
	// Get returns the value for key, or errors.ErrCacheNotFound when the key
	// is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// SetWithTTL stores value under key, expiring after ttl.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// KeysByPrefix returns all live keys starting with prefix, in ascending
	// lexicographic order.
	KeysByPrefix(ctx context.Context, prefix string) ([]string, error)

	// DeleteMany removes the given keys and returns how many existed.
	DeleteMany(ctx context.Context, keys []string) (int64, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
