package landsea

import (
	"context"
	"fmt"
	"sync"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// CachedClassifier wraps a LandSeaClassifier with an in-memory LRU cache.
// Keys round coordinates to four decimal places (roughly 10m), which is well
// inside the resolution of any land/sea boundary, so nearby repeat samples
// share an entry.
type CachedClassifier struct {
	inner domain.LandSeaClassifier
	cache *lruCache

	// Optional counters, incremented on lookup; nil funcs are skipped.
	OnHit  func()
	OnMiss func()
}

// NewCachedClassifier creates a cache decorator around a classifier.
func NewCachedClassifier(inner domain.LandSeaClassifier, maxEntries int) *CachedClassifier {
	return &CachedClassifier{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

func (c *CachedClassifier) IsOcean(ctx context.Context, lat, lon float64) (bool, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if ocean, ok := c.cache.get(key); ok {
		if c.OnHit != nil {
			c.OnHit()
		}
		return ocean, nil
	}
	if c.OnMiss != nil {
		c.OnMiss()
	}
	ocean, err := c.inner.IsOcean(ctx, lat, lon)
	if err != nil {
		return ocean, err
	}
	c.cache.put(key, ocean)
	return ocean, nil
}

// lruCache is a simple thread-safe LRU cache for land/sea answers.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	ocean bool
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false, false
	}
	c.moveToFront(e)
	return e.ocean, true
}

func (c *lruCache) put(key string, ocean bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.ocean = ocean
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, ocean: ocean}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
