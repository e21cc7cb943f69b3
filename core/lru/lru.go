package lru

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// DefaultCapacity is the capacity used by DefaultConfig when
// CACHE_CAPACITY is not set.
const DefaultCapacity = 1024

// EvictCallback receives entries as the cache drops them: capacity
// evictions, Clear, and Close. It is not called for Remove, where the
// caller receives the value directly, nor when Put replaces the value of an
// existing key. The callback runs while the cache holds its internal lock
// and must not call back into the cache.
type EvictCallback func(key string, value []byte)

// Cache is a bounded, thread-safe LRU cache mapping string keys to byte
// values. Every operation runs in a single critical section, so operations
// are linearizable: no caller ever observes an intermediate state.
//
// Values are copied on the way in and on the way out; callers cannot mutate
// stored bytes through a shared slice.
type Cache struct {
	mu       sync.RWMutex
	index    *bucketIndex
	order    recencyList
	size     int
	capacity int
	closed   bool

	hasher  Hasher
	onEvict EvictCallback
	logger  *slog.Logger
}

// New creates a cache holding at most capacity entries. The bucket count of
// the internal hash index is derived from capacity and is fixed for the
// cache lifetime.
func New(capacity int, opts ...Option) (*Cache, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	c := &Cache{
		capacity: capacity,
		hasher:   DJB2,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.index = newBucketIndex(2*capacity+1, c.hasher)

	return c, nil
}

// Put stores a copy of value under key and makes the entry the most
// recently used. Storing an existing key replaces its value in place
// without changing the cache size. When a new entry pushes the cache past
// capacity, the least recently used entry is dropped; exactly one entry is
// dropped per overflow. On error the cache state is unchanged.
func (c *Cache) Put(key string, value []byte) error {
	if value == nil {
		return ErrNilValue
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if e := c.index.find(key); e != nil {
		e.value = cloneValue(value)
		c.order.moveToFront(e)
		return nil
	}

	e := &entry{key: key, value: cloneValue(value)}
	c.index.insert(e)
	c.order.pushFront(e)
	c.size++

	if c.size > c.capacity {
		c.evict(c.order.tail)
	}

	return nil
}

// Get returns a copy of the value stored under key and promotes the entry
// to most recently used. The second return reports whether the key was
// present; a miss is a normal outcome, not an error.
//
// A hit reorders shared state, so lookup and promotion run together under
// the same exclusive lock a write takes, never split across two
// acquisitions.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, false
	}

	e := c.index.find(key)
	if e == nil {
		return nil, false
	}

	c.order.moveToFront(e)
	return cloneValue(e.value), true
}

// Peek returns a copy of the value stored under key without updating
// recency order. Because nothing is mutated, Peek takes only the shared
// lock.
func (c *Cache) Peek(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, false
	}

	e := c.index.find(key)
	if e == nil {
		return nil, false
	}

	return cloneValue(e.value), true
}

// Remove drops key from the cache, returning the stored value and whether
// the key was present. Removing an absent key is a normal outcome, not an
// error. The evict callback does not fire.
func (c *Cache) Remove(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, false
	}

	e := c.index.find(key)
	if e == nil {
		return nil, false
	}

	c.unlink(e)
	return e.value, true
}

// Len reports the number of entries currently held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.size
}

// Cap reports the fixed capacity the cache was created with.
func (c *Cache) Cap() int {
	return c.capacity
}

// Clear drops every entry while keeping the cache usable. The evict
// callback fires for each entry, least recently used first.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	removed := c.purge()
	c.logger.Debug("cache cleared", slog.Int("removed", removed))
}

// Close drops every entry, releases the bucket array, and marks the cache
// closed. Subsequent Put calls return ErrClosed and lookups report a miss.
// Close returns ErrClosed when called again. Callers must quiesce
// in-flight operations before discarding the cache.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	removed := c.purge()
	c.index = nil
	c.closed = true
	c.logger.Debug("cache closed", slog.Int("removed", removed))

	return nil
}

// SetEvictCallback replaces the eviction callback. Pass nil to disable
// notifications. Safe to call concurrently with cache operations.
func (c *Cache) SetEvictCallback(fn EvictCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onEvict = fn
}

// Healthcheck validates that the cache is operational. Returns nil if
// healthy, ErrClosed after Close, or the context error when ctx is done.
// This method is thread-safe and suitable for use in health check endpoints.
func (c *Cache) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClosed
	}

	return nil
}

// unlink detaches e from the index and the recency list. Caller holds the
// write lock.
func (c *Cache) unlink(e *entry) {
	c.index.remove(e)
	c.order.remove(e)
	c.size--
}

// evict drops e and notifies the callback. Caller holds the write lock.
func (c *Cache) evict(e *entry) {
	c.unlink(e)

	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}

	c.logger.Debug("cache entry evicted",
		slog.String("key", e.key),
		slog.Int("size", c.size))
}

// purge drops every entry, tail first, notifying the callback for each.
// Caller holds the write lock.
func (c *Cache) purge() int {
	removed := 0
	for c.order.tail != nil {
		e := c.order.tail
		c.unlink(e)
		if c.onEvict != nil {
			c.onEvict(e.key, e.value)
		}
		removed++
	}

	return removed
}
