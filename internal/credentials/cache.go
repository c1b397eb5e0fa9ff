package credentials

import "sync"

// Cache is the process-lifetime instance cache: target name to credential,
// no persistence across restarts and no eviction. It is shared between
// sessions and safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Credential
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]Credential),
	}
}

func (c *Cache) Get(target string) (Credential, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cred, ok := c.entries[target]
	return cred, ok
}

func (c *Cache) Set(target string, cred Credential) {
	c.mu.Lock()
	c.entries[target] = cred
	c.mu.Unlock()
}

// Remove deletes the entry for target, reporting whether one existed.
func (c *Cache) Remove(target string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[target]
	delete(c.entries, target)
	return ok
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Credential)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
