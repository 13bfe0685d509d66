package bcount

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeCellCount(t *testing.T) {
	c := NewSafe([]int{63, 67, 42})

	assert.Equal(t, uint64(0), c.Count())

	for i := 0; i < 4; i++ {
		c.Update(func(_ *[]int) {})
	}

	assert.Equal(t, uint64(4), c.Count())

	prev := c.Replace([]int{3, 4, 5})

	assert.Equal(t, uint64(5), c.Count())
	assert.Equal(t, []int{63, 67, 42}, prev)
	assert.Equal(t, []int{3, 4, 5}, c.Read())
}

func TestSafeCellConcurrentUpdates(t *testing.T) {
	c := NewSafe(0)

	wg := sync.WaitGroup{}
	wg.Add(1000)
	for i := 0; i < 1000; i++ {
		go func() {
			c.Update(func(v *int) {
				*v++
			})
			wg.Done()
		}()
	}

	wg.Wait()

	assert.Equal(t, uint64(1000), c.Count())
	assert.Equal(t, 1000, c.Read())
}

func TestSafeCellConcurrentReaders(t *testing.T) {
	c := NewSafe([]int{1, 2, 3})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(4)
	for i := 0; i < 4; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				val := c.Read()
				require.Len(t, val, 3)
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		c.Replace([]int{i, i + 1, i + 2})
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, uint64(1000), c.Count())
}

func TestSafeCellWrap(t *testing.T) {
	c := NewSafe(3)
	c.count.Set(math.MaxUint64)

	c.Update(func(_ *int) {})

	assert.Equal(t, uint64(0), c.Count())
}

func TestSafeCellReset(t *testing.T) {
	c := NewSafe("x")

	c.Replace("y")
	require.Equal(t, uint64(1), c.Count())

	c.Reset()
	assert.Equal(t, uint64(0), c.Count())
	assert.Equal(t, "y", c.Read())
}

func TestSafeCellUnwrap(t *testing.T) {
	c := NewSafe(42)

	c.Update(func(_ *int) {})
	val := c.Unwrap()

	assert.Equal(t, 42, val)
	assert.Equal(t, 0, c.Read())
	assert.Equal(t, uint64(0), c.Count())
}
