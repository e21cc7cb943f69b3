// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/cachekit/core/config"
//
//	type AppConfig struct {
//		Name     string `env:"APP_NAME" envDefault:"cachekit-app"`
//		Capacity int    `env:"CACHE_CAPACITY" envDefault:"1024"`
//		Debug    bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	func main() {
//		var cfg AppConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 AppConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 AppConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type CacheConfig struct {
//		Capacity int `env:"CACHE_CAPACITY" envDefault:"1024"`
//	}
//
//	type DemoConfig struct {
//		Workers int `env:"DEMO_WORKERS" envDefault:"4"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&CacheConfig{})
//	config.MustLoad(&DemoConfig{})
package config
