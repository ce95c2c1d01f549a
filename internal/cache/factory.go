package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProviderConfig holds the settings a provider needs to build a cache.
type ProviderConfig struct {
	// Size is the maximum number of entries before LRU eviction kicks in.
	Size int

	// TTL is how long an entry stays valid after being written.
	TTL time.Duration

	// OnEvict is called for entries pushed out by the LRU policy.
	OnEvict EvictCallback

	// Logger receives internal errors. Nil disables error reporting.
	Logger Logger

	// RedisAddress is the Redis/Valkey server address ("host:port").
	RedisAddress string

	// RedisPassword is the password for the Redis/Valkey server.
	RedisPassword string

	// RedisDB is the Redis/Valkey database number.
	RedisDB int

	// Group names the cache instance in Prometheus metrics (cache_hits_total,
	// cache_misses_total, ...). A non-empty Group wraps the cache with metric
	// instrumentation automatically.
	Group string
}

// Provider constructs a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register makes a provider available under the given name.
// It panics on a nil provider or a duplicate name.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New builds a cache from the named provider. With a non-empty cfg.Group the
// result is wrapped so hits, misses and evictions are counted under a "cache"
// label equal to Group, and an entries collector is registered that calls
// Len() at scrape time rather than keeping its own counter.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.Group == "" {
		return p(cfg)
	}

	group := cfg.Group
	// Count evictions in the cache layer so providers don't have to.
	original := cfg.OnEvict
	cfg.OnEvict = func(key string, value []byte) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if original != nil {
			original(key, value)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}

	return newInstrumentedCache(inner, group), nil
}

// RegisteredProviders returns the sorted names of all registered providers.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
