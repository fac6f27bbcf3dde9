package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Value stores one rendered demo result and when it was computed.
type Value struct {
	HTML       string
	Result     any
	ComputedAt time.Time
}

type item struct {
	val       Value
	expiresAt time.Time
}

// Cache keeps the most recent computation per demo with a TTL, and
// coalesces concurrent identical computations per key via singleflight.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration
	group singleflight.Group
}

func New(ttl time.Duration) *Cache {
	return &Cache{items: make(map[string]item), ttl: ttl}
}

// GetOrCompute returns a cached value if still fresh; otherwise it runs
// compute once for all concurrent callers of the same key and stores the
// result. Source is "cache" or "fresh".
func (c *Cache) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (Value, error)) (Value, string, error) {
	c.mu.RLock()
	it, ok := c.items[key]
	if ok && time.Now().Before(it.expiresAt) {
		v := it.val
		c.mu.RUnlock()
		return v, "cache", nil
	}
	c.mu.RUnlock()

	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		c.put(key, v)
		return v, nil
	})
	if err != nil {
		return Value{}, "", err
	}
	return res.(Value), "fresh", nil
}

// Put records v under key, replacing any previous entry.
func (c *Cache) Put(key string, v Value) { c.put(key, v) }

func (c *Cache) put(key string, v Value) {
	c.mu.Lock()
	c.items[key] = item{val: v, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Get returns the value under key if present and not expired.
func (c *Cache) Get(key string) (Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[key]
	if !ok || time.Now().After(it.expiresAt) {
		return Value{}, false
	}
	return it.val, true
}

// Len returns the number of items in the cache (for tests).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
