package server

import (
	"sync"
	"time"
)

type cacheItem struct {
	body       []byte
	expiration time.Time
}

// Cache is a minimal in-memory TTL cache for rendered resource bodies,
// safe for concurrent access.
type Cache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
}

// NewCache constructs an empty Cache instance.
func NewCache() *Cache { return &Cache{items: make(map[string]cacheItem)} }

// Set stores a rendered body with a time-to-live for the given key.
func (c *Cache) Set(key string, body []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{body: body, expiration: time.Now().Add(ttl)}
}

// Get retrieves a non-expired body for the key, returning false if missing
// or expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(it.expiration) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return it.body, true
}
