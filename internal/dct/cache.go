package dct

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Cache shares twiddle tables between transforms of the same length,
// precision and direction. Stored tables are read-only.
type Cache struct {
	data sync.Map
}

type cacheKey struct {
	n         int
	precision Precision
	dir       Direction
}

func NewCache() *Cache {
	var c Cache
	return &c
}

// Twiddles returns the table for (n, precision of T, dir). A nil cache
// builds a fresh table on every call.
func Twiddles[T constraints.Float](c *Cache, n int, dir Direction) *Twiddle[T] {
	if c == nil {
		return NewTwiddle[T](n, dir)
	}
	key := cacheKey{n: n, precision: PrecisionOf[T](), dir: dir}
	if v, ok := c.data.Load(key); ok {
		if tw, ok := v.(*Twiddle[T]); ok {
			return tw
		}
		// same width, different named float type
		return NewTwiddle[T](n, dir)
	}
	tw := NewTwiddle[T](n, dir)
	actual, loaded := c.data.LoadOrStore(key, tw)
	if loaded {
		if tw, ok := actual.(*Twiddle[T]); ok {
			return tw
		}
	}
	return tw
}

// Len reports the number of stored tables.
func (c *Cache) Len() int {
	var l int
	c.data.Range(func(_, _ any) bool {
		l++
		return true
	})
	return l
}
