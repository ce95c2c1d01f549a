// Package cache provides the pluggable byte cache the catalog clients put
// fetched pages in, so repeated resolutions of the same title do not re-hit
// a rate-limited site. Providers register themselves by name; the in-memory
// provider is LRU with TTL, the redis provider keeps the same semantics on a
// shared server.
package cache

// EvictCallback is called when an entry is evicted from the cache.
// Not all providers support eviction callbacks (Redis relies on server-side
// expiry for part of its cleanup).
type EvictCallback func(key string, value []byte)

// Logger receives error reports from cache internals. Kept as a one-method
// interface so the package does not depend on a concrete logging library;
// nil means errors are silently ignored.
type Logger interface {
	Error(msg string, err error)
}

// Cache is a key-value byte cache with LRU semantics.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true on a hit.
	Get(key string) ([]byte, bool)

	// Set stores a value under the key, overwriting any previous value.
	Set(key string, value []byte)

	// Len returns the number of entries currently in the cache. For external
	// backends this may reflect the key count in the configured database.
	Len() int

	// Close releases resources held by the cache (network connections and
	// metric collectors). In-memory caches treat this as a no-op.
	Close() error
}
