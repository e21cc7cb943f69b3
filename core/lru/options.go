package lru

import "log/slog"

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger for internal operations. The cache logs at
// debug level only and never on the lookup hit path.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHasher replaces the default DJB2 key hash.
func WithHasher(h Hasher) Option {
	return func(c *Cache) {
		if h != nil {
			c.hasher = h
		}
	}
}

// WithEvictCallback sets the eviction callback at construction time.
// Equivalent to calling SetEvictCallback on the new cache.
func WithEvictCallback(fn EvictCallback) Option {
	return func(c *Cache) {
		c.onEvict = fn
	}
}
