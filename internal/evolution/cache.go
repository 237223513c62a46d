package evolution

import "sync"

// LineCache memoizes resolved lines. Entries never expire; evolution data
// does not change within a process lifetime.
type LineCache interface {
	Get(key string) ([]string, bool)
	Put(key string, line []string)
}

// MemCache is an in-process LineCache safe for concurrent use. Lookups are
// not serialized: two callers missing the same key both compute it and the
// second Put overwrites the first with an equal value.
type MemCache struct {
	mu    sync.RWMutex
	lines map[string][]string
}

// NewMemCache returns an empty MemCache.
func NewMemCache() *MemCache {
	return &MemCache{lines: make(map[string][]string)}
}

func (c *MemCache) Get(key string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	line, ok := c.lines[key]
	return line, ok
}

func (c *MemCache) Put(key string, line []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines[key] = line
}

// Len reports the number of cached entries.
func (c *MemCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}
