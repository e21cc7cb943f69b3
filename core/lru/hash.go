package lru

import "github.com/cespare/xxhash/v2"

// Hasher computes the bucket hash for a key. The result is reduced modulo
// the bucket count, so only distribution quality matters, not the full
// 64-bit range. A hasher must be deterministic for the cache lifetime.
type Hasher func(key string) uint64

// DJB2 is the default Hasher: hash = hash*33 + byte, seeded at 5381.
// Allocation-free and well distributed for the short text keys caches
// typically see.
func DJB2(key string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return h
}

// XXHash is an alternative Hasher backed by xxHash64 for workloads with
// long or highly similar keys.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
