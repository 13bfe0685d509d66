// Package stats holds small atomic counters used for access accounting
// where the reader must not contend with writers.
package stats

import "sync/atomic"

// Counter is a wrap-on-overflow event counter readable without locks.
type Counter struct {
	v *atomic.Uint64
}

func NewCounter() Counter {
	return Counter{v: &atomic.Uint64{}}
}

// Inc adds one. Wraps silently past the uint64 boundary.
func (c Counter) Inc() {
	c.v.Add(1)
}

// Set stores an arbitrary value.
func (c Counter) Set(v uint64) {
	c.v.Store(v)
}

func (c Counter) Reset() {
	c.v.Store(0)
}

func (c Counter) Get() uint64 {
	return c.v.Load()
}
