package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilTarget is returned when Load receives a nil configuration pointer.
var ErrNilTarget = errors.New("configuration target must not be nil")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed configuration value
)

// Load populates cfg from environment variables and caches the result per
// concrete type, so every caller asking for the same type observes the same
// value. The first call in the process loads a .env file into the
// environment if one exists; a missing file is not an error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", typ, err)
	}

	// First stored value wins so concurrent loaders agree.
	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)

	return nil
}

// MustLoad populates cfg like Load but panics on failure.
// Intended for application startup where a bad environment is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
