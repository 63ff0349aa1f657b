package fn

import (
	"hash/maphash"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// store is the backing table of a memoized function.
type store[K comparable, R any] interface {
	get(key K) (R, bool)
	add(key K, value R)
	len() int
}

func newStore[K comparable, R any](o MemoizeOptions, hash func(K) uint64) store[K, R] {
	if o.MaxEntries > 0 {
		return newLRUStore[K, R](o.MaxEntries, o.Logger)
	}
	return newShardedStore[K, R](o.Shards, hash)
}

// hashText picks shards for the encoded argument lists of MemoizeArgs.
func hashText(key string) uint64 { return xxhash.Sum64String(key) }

// hashComparable picks shards for typed keys by == identity, so a pointer
// key hashes by address and never by what it points to.
func hashComparable[K comparable]() func(K) uint64 {
	seed := maphash.MakeSeed()
	return func(k K) uint64 { return maphash.Comparable(seed, k) }
}

// ─── Unbounded: sharded maps ──────────────────────────────────────────────────

type shard[K comparable, R any] struct {
	mu    sync.RWMutex
	items map[K]R
}

type shardedStore[K comparable, R any] struct {
	shards []*shard[K, R]
	hash   func(K) uint64
}

func newShardedStore[K comparable, R any](n int, hash func(K) uint64) *shardedStore[K, R] {
	s := &shardedStore[K, R]{shards: make([]*shard[K, R], n), hash: hash}
	for i := range s.shards {
		s.shards[i] = &shard[K, R]{items: make(map[K]R)}
	}
	return s
}

func (s *shardedStore[K, R]) shardFor(key K) *shard[K, R] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[s.hash(key)%uint64(len(s.shards))]
}

func (s *shardedStore[K, R]) get(key K) (R, bool) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.items[key]
	return v, ok
}

func (s *shardedStore[K, R]) add(key K, value R) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.items[key] = value
}

func (s *shardedStore[K, R]) len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.items)
		sh.mu.RUnlock()
	}
	return n
}

// ─── Bounded: LRU ─────────────────────────────────────────────────────────────

type lruStore[K comparable, R any] struct {
	cache *lru.Cache
}

func newLRUStore[K comparable, R any](size int, logger *zap.Logger) *lruStore[K, R] {
	cache, err := lru.NewWithEvict(size, func(key, _ any) {
		logger.Debug("memoize: evicted", zap.Any("key", key))
	})
	if err != nil {
		// size is validated positive before we get here
		panic(err)
	}
	return &lruStore[K, R]{cache: cache}
}

func (s *lruStore[K, R]) get(key K) (R, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		var zero R
		return zero, false
	}
	return v.(entry[R]).value, true
}

func (s *lruStore[K, R]) add(key K, value R) {
	s.cache.Add(key, entry[R]{value: value})
}

func (s *lruStore[K, R]) len() int { return s.cache.Len() }

// entry boxes a result so nil interface results survive the round trip
// through untyped containers.
type entry[R any] struct {
	value R
}
