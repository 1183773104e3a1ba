package ssfmt

import (
	"sync"

	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/gossf/ssfmt/numfmt"
)

const defaultCacheCapacity = 100

// formatCache is a bounded least-recently-used cache of parsed formats,
// keyed by raw format code. Parsing is the most repeated cost when a
// caller renders many cells that share one style, so the package-level
// Format and MustFormat helpers get this for free; callers that already
// hold their own *numfmt.Format bypass it entirely.
type formatCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*numfmt.Format
	order    *doublylinkedlist.List // keys, least-recently-used first
}

func newFormatCache(capacity int) *formatCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &formatCache{
		capacity: capacity,
		entries:  make(map[string]*numfmt.Format),
		order:    doublylinkedlist.New(),
	}
}

func (c *formatCache) get(key string) (*numfmt.Format, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.touchLocked(key)
	return f, true
}

func (c *formatCache) put(key string, f *numfmt.Format) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.entries[key] = f
		c.touchLocked(key)
		return
	}
	if c.order.Size() >= c.capacity {
		if oldest, ok := c.order.Get(0); ok {
			c.order.Remove(0)
			delete(c.entries, oldest.(string))
		}
	}
	c.entries[key] = f
	c.order.Add(key)
}

func (c *formatCache) touchLocked(key string) {
	if idx := c.order.IndexOf(key); idx >= 0 {
		c.order.Remove(idx)
	}
	c.order.Add(key)
}

var defaultCache = newFormatCache(defaultCacheCapacity)

func cachedParse(code string) (*numfmt.Format, error) {
	if f, ok := defaultCache.get(code); ok {
		return f, nil
	}
	f, err := Parse(code)
	if err != nil {
		return nil, err
	}
	defaultCache.put(code, f)
	return f, nil
}
