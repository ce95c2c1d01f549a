package cache

// instrumentedCache wraps a Cache and records Prometheus hits, misses,
// evictions and entry counts under the group label, so callers get metrics
// without managing them.
type instrumentedCache struct {
	inner Cache
	group string
}

// newInstrumentedCache wraps inner for the given group. The entries collector
// calls inner.Len() at scrape time, which stays correct for backends like
// Redis where TTL expiry removes entries outside the process.
func newInstrumentedCache(inner Cache, group string) *instrumentedCache {
	registerEntriesCollector(group, inner.Len)
	return &instrumentedCache{inner: inner, group: group}
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		HitsTotal.WithLabelValues(c.group).Inc()
	} else {
		MissesTotal.WithLabelValues(c.group).Inc()
	}
	return val, ok
}

func (c *instrumentedCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

// Close unregisters the entries collector and closes the wrapped cache.
func (c *instrumentedCache) Close() error {
	unregisterEntriesCollector(c.group)
	return c.inner.Close()
}
