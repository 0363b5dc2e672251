package resolution

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a remote lookup result stays valid.
const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	record   ProductRecord
	storedAt time.Time
}

// Cache holds remote resolution results for the lifetime of the process.
// Safe for concurrent use; the server dispatches requests concurrently.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache creates a cache with the given expiry window. A zero or negative
// ttl falls back to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func cacheKey(code, context string) string {
	if context == "" {
		return code
	}
	return code + "\x00" + context
}

// Get returns a cached record that has not expired. Expired entries are
// removed on access and reported as a miss.
func (c *Cache) Get(code, context string) (ProductRecord, bool) {
	key := cacheKey(code, context)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return ProductRecord{}, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return ProductRecord{}, false
	}
	return entry.record, true
}

// Put stores a record keyed by code and context.
func (c *Cache) Put(code, context string, record ProductRecord) {
	key := cacheKey(code, context)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{record: record, storedAt: c.now()}
}

// Sweep drops every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := c.now()
	for key, entry := range c.entries {
		if now.Sub(entry.storedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of stored entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
