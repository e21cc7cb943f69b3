// Package lru provides a bounded, thread-safe LRU cache mapping string keys
// to byte values.
//
// The cache pairs a fixed-bucket hash index with a doubly-linked recency
// list, giving O(1) lookup, insertion, removal, and eviction. When the
// cache is full, storing a new key drops the least recently used entry.
// Both Get and Put count as a use and promote the entry; Peek reads without
// promoting.
//
// # Features
//
//   - Fixed capacity set at creation, enforced on every write
//   - O(1) operations backed by a hash index and an intrusive recency list
//   - Single critical section per operation; all operations linearizable
//   - Values copied in and out, so callers never share slice storage
//   - Optional eviction callback for dropped entries
//   - Pluggable key hash (DJB2 by default, xxHash64 provided)
//
// # Usage
//
// Basic cache setup:
//
//	cache, err := lru.New(1024)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cache.Close()
//
//	if err := cache.Put("user:123", []byte("payload")); err != nil {
//		log.Fatal(err)
//	}
//
//	value, found := cache.Get("user:123")
//	if found {
//		log.Printf("hit: %s", value)
//	}
//
// Environment-driven construction:
//
//	var cfg lru.Config
//	config.MustLoad(&cfg)
//
//	cache, err := lru.NewFromConfig(cfg, lru.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Eviction
//
// The entry least recently touched by Get or Put is always the next to go.
// Register a callback to observe drops:
//
//	cache.SetEvictCallback(func(key string, value []byte) {
//		log.Printf("evicted %s", key)
//	})
//
// The callback fires for capacity evictions, Clear, and Close. It does not
// fire for Remove, which hands the value back to the caller. The callback
// runs while the cache holds its internal lock and must not call back into
// the cache.
//
// # Concurrency
//
// All methods are safe for concurrent use. A Get promotes the entry it
// finds, which mutates shared ordering state, so Get acquires the same
// exclusive lock as a write for its whole duration; lookup and promotion
// are never split across two lock acquisitions. Peek and Len take a shared
// lock. Close requires that no other operation is in flight.
//
// # Sizing
//
// The hash index allocates roughly two buckets per unit of capacity and
// never rehashes. Occupancy is capped by capacity, so chains stay short;
// the index does not grow under load and is not meant to.
package lru
