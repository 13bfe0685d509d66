// Package memo caches computation results keyed by the access count of
// bcount cells. A result is reused while the source cell's counter stands
// still; any mutable access grant on the cell forces recomputation on the
// next lookup, including grants that wrote nothing. That trade is the whole
// point: comparing two counters is always cheaper than hashing or diffing
// the wrapped value.
package memo

import (
	"github.com/adwski/bcount/internal/logger"
	"github.com/adwski/bcount/internal/stats"
)

// Source is the cell-side surface a memoizer needs. Both *bcount.Cell[T]
// and *bcount.SafeCell[T] satisfy it.
type Source[T any] interface {
	Read() T
	Count() uint64
}

// Func memoizes a single computation over a single source. Not safe for
// concurrent use.
type Func[T, R any] struct {
	logger logger.Logger

	src     Source[T]
	compute func(T) R

	result R
	seen   uint64
	valid  bool

	hits   stats.Counter
	misses stats.Counter
}

func NewFunc[T, R any](src Source[T], compute func(T) R, opts ...Option) (*Func[T, R], error) {
	var cfg Config
	cfg.setDefaults()

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Func[T, R]{
		logger:  cfg.logger,
		src:     src,
		compute: compute,
		hits:    stats.NewCounter(),
		misses:  stats.NewCounter(),
	}, nil
}

// Get returns the memoized result, recomputing it first if the source
// counter moved since the last computation (or if nothing is cached yet).
// The counter snapshot is taken before the source is read, so a mutation
// racing the computation is caught by the next Get.
func (f *Func[T, R]) Get() R {
	cnt := f.src.Count()
	if f.valid && cnt == f.seen {
		f.hits.Inc()
		f.logger.Trace("reusing cached result", "count", cnt)

		return f.result
	}

	f.logger.DebugFunc(func() (string, []any) {
		return "recomputing", []any{"count", cnt, "seen", f.seen, "cached", f.valid}
	})

	f.result = f.compute(f.src.Read())
	f.seen = cnt
	f.valid = true
	f.misses.Inc()

	return f.result
}

// Invalidate drops the cached result so the next Get recomputes.
func (f *Func[T, R]) Invalidate() {
	f.valid = false
}

// Stats reports how many Gets were served from cache and how many
// recomputed.
func (f *Func[T, R]) Stats() (hits, misses uint64) {
	return f.hits.Get(), f.misses.Get()
}
