package lru

// entry is a single cache slot. Each entry is linked into two structures at
// once: the recency list through prev/next and its hash bucket chain through
// bucketNext. The cache owns the entry; both structures hold references into
// the same object and never outlive it.
type entry struct {
	key   string
	value []byte

	// recency list links
	prev *entry
	next *entry

	// hash bucket chain link
	bucketNext *entry
}

// cloneValue returns a copy of v that shares no storage with it. The copy of
// an empty slice is non-nil, so stored empty values stay distinguishable
// from a miss.
func cloneValue(v []byte) []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
