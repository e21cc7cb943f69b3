// Package cachekit provides building blocks for bounded in-process caching
// in services that need fast lookup with memory-bounded retention under
// concurrent load. The library implements modern Go patterns including
// functional options for configuration, copy-in/copy-out value semantics for
// safety, and environment-driven configuration for twelve-factor deployments.
//
// # LLM Assistant Note
//
// This file serves as a comprehensive index of all packages in the cachekit
// library, designed to help LLMs understand the complete codebase structure
// and functionality. Each package entry includes the full import path and a
// concise description of its purpose.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/cachekit/core/lru
//	go doc -all github.com/dmitrymomot/cachekit/core/config
//
// # Core Packages
//
// These packages provide the fundamental building blocks:
//
//	github.com/dmitrymomot/cachekit/core/lru    - Bounded thread-safe LRU cache with O(1) operations
//	github.com/dmitrymomot/cachekit/core/config - Type-safe environment variable loading
//
// # Quick Start
//
// Create a cache, store a value, and read it back:
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
//	if value, found := cache.Get("user:123"); found {
//		log.Printf("hit: %s", value)
//	}
//
// Or drive capacity from the environment:
//
//	var cfg lru.Config
//	config.MustLoad(&cfg)
//
//	cache, err := lru.NewFromConfig(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// See the examples directory for complete runnable programs.
package cachekit
