package font

import (
	"slices"
	"sync"
)

// outlineCacheLimit bounds the outlines kept per TTFSource. Latin-1 in a
// handful of fonts fits comfortably.
const outlineCacheLimit = 2048

// outlineCache keeps converted outlines with a soft size limit. When the
// limit is exceeded the least recently used quarter is dropped.
type outlineCache struct {
	mu      sync.Mutex
	entries map[glyphKey]*cachedOutline
	limit   int
	tick    int64
}

type cachedOutline struct {
	o     *StrokeOutline
	atime int64
}

func newOutlineCache(limit int) *outlineCache {
	return &outlineCache{entries: make(map[glyphKey]*cachedOutline), limit: limit}
}

func (c *outlineCache) get(key glyphKey) (*StrokeOutline, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.tick++
	e.atime = c.tick
	return e.o, true
}

func (c *outlineCache) put(key glyphKey, o *StrokeOutline) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick++
	c.entries[key] = &cachedOutline{o: o, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

func (c *outlineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict drops the oldest entries down to three quarters of the limit.
// Callers hold mu.
func (c *outlineCache) evict() {
	keep := max(c.limit*3/4, 1)
	keys := make([]glyphKey, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b glyphKey) int {
		return int(c.entries[a].atime - c.entries[b].atime)
	})
	for _, k := range keys[:len(keys)-keep] {
		delete(c.entries, k)
	}
}
