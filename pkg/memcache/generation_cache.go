package mem

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// GenerationCache memoizes validated generation results per request hash so
// an identical regeneration within the TTL does not burn another model call.
type GenerationCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewGenerationCache(ttl time.Duration) *GenerationCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &GenerationCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Key derives a cache key from the request's identifying parts.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func (c *GenerationCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (c *GenerationCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}

	// Simple cleanup: drop expired entries once the map grows large.
	if len(c.entries) > 1000 {
		now := time.Now()
		for k, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
}
