package attrkey

import (
	"sync"

	"github.com/tagforge/tagforge/pkg/metrics"
)

// shared is the process-wide memo tier. It is a pure growth cache: the key
// space is bounded by the distinct attribute names a program actually uses,
// so entries are never evicted. sync.Map gives lock-free lookups and
// non-contending inserts for disjoint keys; same-key inserts are idempotent
// because the computed value for a key is always identical.
var shared sync.Map // map[string]Transformed

// Transform converts a shorthand key to its wire form, consulting the shared
// cache. Safe for concurrent use from any number of goroutines.
func Transform(key string) (Transformed, error) {
	if cached, ok := shared.Load(key); ok {
		metrics.RecordCacheLookup(metrics.TierShared, true)
		return cached.(Transformed), nil
	}
	metrics.RecordCacheLookup(metrics.TierShared, false)

	t, err := compute(key)
	if err != nil {
		// Invalid keys are not cached; the growth bound only holds for
		// keys a working program actually renders.
		return Transformed{}, err
	}
	shared.Store(key, t)
	return t, nil
}

// Cache is the per-worker front tier: a plain map consulted before the
// shared tier. A Cache is owned by a single goroutine at a time and must
// not be shared; check one out of the pool per render call.
type Cache struct {
	local map[string]Transformed
}

// NewCache returns an empty per-worker cache.
func NewCache() *Cache {
	return &Cache{local: make(map[string]Transformed, 64)}
}

// Transform converts a shorthand key to its wire form. Lookup order is
// local map, shared map, compute; results are inserted into both tiers.
// The cache is transparent: hit or miss, the result for a key is identical.
func (c *Cache) Transform(key string) (Transformed, error) {
	if cached, ok := c.local[key]; ok {
		metrics.RecordCacheLookup(metrics.TierLocal, true)
		return cached, nil
	}
	metrics.RecordCacheLookup(metrics.TierLocal, false)

	t, err := Transform(key)
	if err != nil {
		return Transformed{}, err
	}
	c.local[key] = t
	return t, nil
}

// cachePool recycles per-worker caches across render calls. A recycled
// cache keeps its warm entries; it is never cleared.
var cachePool = sync.Pool{
	New: func() any { return NewCache() },
}

// AcquireCache checks a per-worker cache out of the pool.
func AcquireCache() *Cache {
	return cachePool.Get().(*Cache)
}

// ReleaseCache returns a cache to the pool. The caller must not use it
// afterwards. Oversized caches are dropped to bound pool memory.
func ReleaseCache(c *Cache) {
	if len(c.local) > 4096 {
		return
	}
	cachePool.Put(c)
}
