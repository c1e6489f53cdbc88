package store

import (
	"sync"
)

// nameCache est le cache de résolution ID → nom, partagé en lecture entre
// les appels pendant la vie du process. Cycle de vie explicite: créé avec le
// Store, invalidé à la demande.
type nameCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func newNameCache() *nameCache {
	return &nameCache{entries: make(map[string]string)}
}

func (c *nameCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *nameCache) put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *nameCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}
