package jikan

import (
	"sync"
	"time"
)

// DefaultTTL is the freshness window of cached responses.
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	val      any
	storedAt time.Time
}

// Cache memoizes validated responses for a freshness window. Expired
// entries are removed lazily when looked up; there is no background sweep.
// Safe for concurrent use.
type Cache struct {
	mu         sync.RWMutex
	items      map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

type CacheOptions struct {
	// TTL defaults to DefaultTTL.
	TTL time.Duration
	// MaxEntries bounds the cache; 0 means unbounded. When full, the oldest
	// entry is evicted on Set.
	MaxEntries int
	// Now replaces time.Now in tests.
	Now func() time.Time
}

func NewCache(opts CacheOptions) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache{
		items:      make(map[string]cacheEntry),
		ttl:        opts.TTL,
		maxEntries: opts.MaxEntries,
		now:        opts.Now,
	}
}

// Get returns the value stored under key if it is still fresh.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.expired(it) {
		c.mu.Lock()
		if cur, ok2 := c.items[key]; ok2 && c.expired(cur) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return it.val, true
}

// Set inserts or replaces the entry for key, stamped with the current time.
func (c *Cache) Set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.items[key] = cacheEntry{val: v, storedAt: c.now()}
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.items = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Len counts stored entries, including expired ones not yet looked up.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) expired(e cacheEntry) bool {
	return c.now().Sub(e.storedAt) > c.ttl
}

func (c *Cache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)
	for k, e := range c.items {
		if !found || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = k, e.storedAt, true
		}
	}
	if found {
		delete(c.items, oldestKey)
	}
}

// Keyspace is a typed view over a Cache. Keys are prefixed with the
// keyspace name so two endpoints can never read each other's values.
type Keyspace[T any] struct {
	cache *Cache
	name  string
}

func NewKeyspace[T any](c *Cache, name string) Keyspace[T] {
	return Keyspace[T]{cache: c, name: name}
}

func (k Keyspace[T]) key(key string) string {
	return k.name + ":" + key
}

// Lookup returns the fresh value for key. A value of another type is
// treated as a miss.
func (k Keyspace[T]) Lookup(key string) (T, bool) {
	var zero T
	v, ok := k.cache.Get(k.key(key))
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

func (k Keyspace[T]) Store(key string, v T) {
	k.cache.Set(k.key(key), v)
}
