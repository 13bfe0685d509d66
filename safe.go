package bcount

import (
	"sync"

	"github.com/adwski/bcount/internal/stats"
)

// SafeCell is the concurrent variant of Cell: reads are shared, mutable
// access is exclusive, and the counter increment happens inside the same
// exclusive section as the mutation, so count and value always appear
// consistent to other goroutines. Count itself is atomic and never takes
// the lock.
type SafeCell[T any] struct {
	mx    sync.RWMutex
	count stats.Counter
	val   T
}

// NewSafe wraps val in a cell with a zero access count.
func NewSafe[T any](val T) *SafeCell[T] {
	return &SafeCell[T]{count: stats.NewCounter(), val: val}
}

// Read returns the current value under the read lock. Same copy semantics
// as Cell.Read.
func (c *SafeCell[T]) Read() T {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return c.val
}

// Update grants fn a mutable view of the value under the exclusive lock.
// The counter is incremented when the view is granted, before fn runs and
// regardless of what fn does with it. The pointer must not escape fn.
func (c *SafeCell[T]) Update(fn func(*T)) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.count.Inc()
	fn(&c.val)
}

// Replace swaps in val and returns the previous value. Counts as a single
// mutable access.
func (c *SafeCell[T]) Replace(val T) T {
	var prev T
	c.Update(func(v *T) {
		prev, *v = *v, val
	})

	return prev
}

// Count returns the number of mutable accesses granted so far.
func (c *SafeCell[T]) Count() uint64 {
	return c.count.Get()
}

// Reset zeroes the counter. The value is untouched.
func (c *SafeCell[T]) Reset() {
	c.count.Reset()
}

// Unwrap returns the contained value and clears the cell to the zero value,
// discarding the counter. The cell must not be used afterwards.
func (c *SafeCell[T]) Unwrap() T {
	c.mx.Lock()
	defer c.mx.Unlock()

	val := c.val

	var zero T
	c.val = zero
	c.count.Reset()

	return val
}
