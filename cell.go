// Package bcount provides value containers that count mutation-capable
// accesses. The count is a cheap change signal for memoization: if it moved
// since a result was computed, the wrapped value may have changed and the
// result should be recomputed. It is not a hash and not a change guarantee —
// a mutable access that writes nothing still bumps the count.
package bcount

// Cell is a single-value container tracking how many times a mutable view
// of the value has been handed out since creation (or the last Reset).
//
// Cell is not safe for concurrent use; see SafeCell for the locked variant.
type Cell[T any] struct {
	val   T
	count uint64
}

// New wraps val in a cell with a zero access count.
func New[T any](val T) *Cell[T] {
	return &Cell[T]{val: val}
}

// Read returns the current value without affecting the counter.
// The value is copied; for reference types (slices, maps) the copy shares
// backing storage, and writes through such a copy bypass the counter.
func (c *Cell[T]) Read() T {
	return c.val
}

// Write returns a mutable view of the value. The counter is incremented
// once per call, at grant time, whether or not the caller writes anything
// through the returned pointer. On overflow the counter wraps to zero.
func (c *Cell[T]) Write() *T {
	c.count++
	return &c.val
}

// Replace swaps in val and returns the previous value. Counts as a single
// mutable access.
func (c *Cell[T]) Replace(val T) T {
	prev := *c.Write()
	c.val = val

	return prev
}

// Count returns the number of mutable accesses granted so far.
func (c *Cell[T]) Count() uint64 {
	return c.count
}

// Reset zeroes the counter. The value is untouched.
func (c *Cell[T]) Reset() {
	c.count = 0
}

// Unwrap returns the contained value and clears the cell to the zero value,
// discarding the counter. The cell must not be used afterwards.
func (c *Cell[T]) Unwrap() T {
	val := c.val

	var zero T
	c.val = zero
	c.count = 0

	return val
}
