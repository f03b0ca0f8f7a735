package repo

import (
	"sync"
	"time"

	"finan/ms-sales-analytics/pkg/model"
)

type cacheEntry struct {
	table      model.RawTable
	expiration time.Time
}

func (e cacheEntry) expired() bool {
	return time.Now().After(e.expiration)
}

// tableCache is a keyed, time-boxed cache over raw fetched tables. Derived
// tables are never cached here: caching anything past the fetch step is how
// the legacy dashboards ended up serving stale, inconsistent metrics.
type tableCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newTableCache(ttl time.Duration) *tableCache {
	return &tableCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *tableCache) Get(key string) (model.RawTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || entry.expired() {
		return model.RawTable{}, false
	}
	return entry.table, true
}

func (c *tableCache) Set(key string, table model.RawTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		table:      table,
		expiration: time.Now().Add(c.ttl),
	}
}

func (c *tableCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
