// Package cache provides the TTL + capacity-bounded result cache sitting in
// front of the documentation pipeline. Concurrent requests for the same key
// are deduplicated with singleflight, so each distinct key is computed once.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// entry is a cached value with its expiration time.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a capacity-bounded LRU with per-entry TTL. The zero value is not
// usable; construct with New.
type Cache[V any] struct {
	lru   *lru.Cache[string, entry[V]]
	group singleflight.Group
	ttl   time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// New creates a cache holding at most size entries, each valid for ttl.
func New[V any](size int, ttl time.Duration) (*Cache[V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}
	l, err := lru.New[string, entry[V]](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &Cache[V]{lru: l, ttl: ttl}, nil
}

// GetOrCompute returns the cached value for key, computing and storing it
// via fn on a miss. Concurrent callers with the same key share one
// computation. The returned bool reports whether the value came from cache.
// Errors from fn are not cached.
func (c *Cache[V]) GetOrCompute(key string, fn func() (V, error)) (V, bool, error) {
	if e, ok := c.lru.Get(key); ok && time.Now().Before(e.expiresAt) {
		c.hits.Add(1)
		return e.value, true, nil
	}
	c.misses.Add(1)

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another goroutine may have stored the value while this one waited
		// on the flight group.
		if e, ok := c.lru.Get(key); ok && time.Now().Before(e.expiresAt) {
			return e.value, nil
		}
		value, err := fn()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, entry[V]{value: value, expiresAt: time.Now().Add(c.ttl)})
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return v.(V), false, nil
}

// Stats returns current counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Entries: c.lru.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// Purge drops all entries.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

// Key builds a stable cache key from its parts. Parts are joined and hashed
// so arbitrary user input cannot collide across positions.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
