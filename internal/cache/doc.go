// Package cache provides the generic LRU caches shared by the text shapers.
//
// # Cache[K, V]
//
// A thread-safe cache with a soft limit. When the limit is exceeded the
// least recently used quarter of the entries is evicted in one pass. The
// GoTextShaper keeps parsed fonts here: there are few of them and each is
// expensive to build.
//
//	fonts := cache.New[*text.FontSource, *font.Font](16)
//	f := fonts.GetOrCreate(src, parse)
//
// # ShardedCache[K, V]
//
// A sharded cache for hot, high-volume lookups. Keys are spread over 16
// shards by a Hasher, and each shard evicts in strict LRU order. The
// CachingShaper stores shaped runs here.
//
//	runs := cache.NewSharded[runKey, []text.ShapedGlyph](256, cache.ComparableHasher[runKey]())
//
// # Thread Safety
//
// Both Cache and ShardedCache are safe for concurrent use.
// Neither should be copied after creation (they contain mutexes).
package cache
