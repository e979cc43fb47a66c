package ai

import "sync"

// Cache is the process-lifetime response cache. Entries live until the
// process exits: no TTL, no size bound, no eviction. It is constructed
// once at startup and handed to the Client; tests build their own
// isolated instances.
//
// Thread-safe for concurrent readers and writers. There is no
// atomicity across a read-miss-then-write sequence; concurrent misses
// on one key may each fill it, last write wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	hits    uint64
	misses  uint64
}

// NewCache creates an empty response cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]string),
	}
}

// Get retrieves a cached response text by key
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return text, ok
}

// Put stores a response text under key, replacing any previous entry
func (c *Cache) Put(key, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = text
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns cache statistics
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Size:    len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: c.calculateHitRate(),
	}
}

// CacheStats represents cache statistics
type CacheStats struct {
	Size    int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// calculateHitRate calculates the cache hit rate (must be called with lock held)
func (c *Cache) calculateHitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}
