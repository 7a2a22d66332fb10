package cache

import (
	"hash/maphash"
	"sync"
	"sync/atomic"
)

const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	shardMask = DefaultShardCount - 1
)

// Hasher computes a hash for a key. ShardedCache uses it for shard selection.
type Hasher[K any] func(K) uint64

var hashSeed = maphash.MakeSeed()

// StringHasher hashes a string key.
func StringHasher(s string) uint64 {
	return maphash.String(hashSeed, s)
}

// ComparableHasher returns a Hasher for any comparable key, including
// structs with interface or pointer fields.
func ComparableHasher[K comparable]() Hasher[K] {
	return func(k K) uint64 {
		return maphash.Comparable(hashSeed, k)
	}
}

// ShardedCache is a thread-safe, sharded LRU cache for high-concurrency scenarios.
// Each shard evicts its least recently used entry once it reaches capacity.
// Hit, miss and eviction counters are atomic.
type ShardedCache[K comparable, V any] struct {
	shards   [DefaultShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int // per shard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*shardEntry[K, V]
	lru     lruList[K]
}

type shardEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a new sharded cache with the specified capacity per shard.
// Total capacity is capacity * DefaultShardCount.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *ShardedCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &ShardedCache[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*shardEntry[K, V])}
	}
	return c
}

func (c *ShardedCache[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(entry.node)
	c.hits.Add(1)
	return entry.value, true
}

// Set stores a value in the cache.
// The value is stored as-is; callers must not modify it after caching.
func (c *ShardedCache[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.insert(s, key, value)
}

// GetOrCreate returns a cached value or creates it with create.
// create runs under the shard lock; keep it fast.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		s.lru.MoveToFront(entry.node)
		c.hits.Add(1)
		return entry.value
	}
	c.misses.Add(1)
	value := create()
	c.insert(s, key, value)
	return value
}

// insert adds or replaces an entry. Caller must hold s.mu.
func (c *ShardedCache[K, V]) insert(s *shard[K, V], key K, value V) {
	if existing, ok := s.entries[key]; ok {
		existing.value = value
		s.lru.MoveToFront(existing.node)
		return
	}
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &shardEntry[K, V]{value: value, node: s.lru.PushFront(key)}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(entry.node)
	delete(s.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *ShardedCache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*shardEntry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *ShardedCache[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
