package lru

// bucketIndex is a fixed-size separate-chaining hash table mapping keys to
// entries. The bucket count is set at creation and never changes; the cache
// bounds occupancy at its capacity, so chains stay short at the designed
// load factor and no rehashing is needed.
type bucketIndex struct {
	buckets []*entry
	hash    Hasher
}

func newBucketIndex(buckets int, hash Hasher) *bucketIndex {
	return &bucketIndex{
		buckets: make([]*entry, buckets),
		hash:    hash,
	}
}

// bucketFor selects the chain holding key.
func (idx *bucketIndex) bucketFor(key string) int {
	return int(idx.hash(key) % uint64(len(idx.buckets)))
}

// find returns the entry stored under key, or nil when absent.
func (idx *bucketIndex) find(key string) *entry {
	for e := idx.buckets[idx.bucketFor(key)]; e != nil; e = e.bucketNext {
		if e.key == key {
			return e
		}
	}
	return nil
}

// insert prepends e to its bucket chain. The caller guarantees the key is
// not already present; upsert handling lives in the cache.
func (idx *bucketIndex) insert(e *entry) {
	b := idx.bucketFor(e.key)
	e.bucketNext = idx.buckets[b]
	idx.buckets[b] = e
}

// remove unlinks e from its bucket chain, matching by identity rather than
// by key.
func (idx *bucketIndex) remove(e *entry) {
	b := idx.bucketFor(e.key)
	if idx.buckets[b] == e {
		idx.buckets[b] = e.bucketNext
		e.bucketNext = nil
		return
	}
	for cur := idx.buckets[b]; cur != nil; cur = cur.bucketNext {
		if cur.bucketNext == e {
			cur.bucketNext = e.bucketNext
			e.bucketNext = nil
			return
		}
	}
}
