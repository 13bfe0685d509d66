package memo

import (
	"github.com/adwski/bcount/internal/logger"
	"github.com/adwski/bcount/internal/stats"

	gocache "github.com/patrickmn/go-cache"
)

type entry[R any] struct {
	result R
	seen   uint64
}

// Cache memoizes many keyed computations. Entries expire after the
// configured TTL so results for sources that stopped being queried do not
// accumulate. Safe for concurrent use as long as each source tolerates
// concurrent Read/Count (SafeCell does, plain Cell does not).
type Cache[T, R any] struct {
	logger logger.Logger

	store *gocache.Cache

	hits   stats.Counter
	misses stats.Counter
}

func NewCache[T, R any](opts ...Option) (*Cache[T, R], error) {
	var cfg Config
	cfg.setDefaults()

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Cache[T, R]{
		logger: cfg.logger,
		store:  gocache.New(cfg.ttl, cfg.cleanupInterval),
		hits:   stats.NewCounter(),
		misses: stats.NewCounter(),
	}, nil
}

// Get returns the memoized result for key, recomputing it if the entry is
// missing, expired, or recorded against an older source counter.
func (c *Cache[T, R]) Get(key string, src Source[T], compute func(T) R) R {
	cnt := src.Count()
	if v, ok := c.store.Get(key); ok {
		if ent, ok := v.(entry[R]); ok && ent.seen == cnt {
			c.hits.Inc()
			c.logger.Trace("reusing cached result", "key", key, "count", cnt)

			return ent.result
		}
	}

	c.logger.Debug("recomputing", "key", key, "count", cnt)

	result := compute(src.Read())
	c.store.Set(key, entry[R]{result: result, seen: cnt}, gocache.DefaultExpiration)
	c.misses.Inc()

	return result
}

// Delete drops the entry for key, forcing the next Get for that key to
// recompute.
func (c *Cache[T, R]) Delete(key string) {
	c.store.Delete(key)
}

// Len returns the number of entries, expired ones included until the next
// cleanup pass.
func (c *Cache[T, R]) Len() int {
	return c.store.ItemCount()
}

// Stats reports how many Gets were served from cache and how many
// recomputed.
func (c *Cache[T, R]) Stats() (hits, misses uint64) {
	return c.hits.Get(), c.misses.Get()
}
