package lru

// Config holds cache configuration with environment variable support.
type Config struct {
	// Maximum number of entries held at once. Fixed for the cache lifetime.
	Capacity int `env:"CACHE_CAPACITY" envDefault:"1024"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
	}
}

// NewFromConfig creates a Cache from configuration.
// Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Cache, error) {
	return New(cfg.Capacity, opts...)
}
