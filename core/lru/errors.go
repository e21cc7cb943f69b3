package lru

import "errors"

var (
	// ErrInvalidCapacity is returned when creating a cache with a non-positive capacity.
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
	// ErrNilValue is returned when storing a nil value.
	ErrNilValue = errors.New("cache value must not be nil")
	// ErrClosed is returned when operating on a closed cache.
	ErrClosed = errors.New("cache is closed")
)
