package fftdct

import (
	"sync"

	"github.com/yyyoichi/fftdct/internal/dct"
)

// TwiddleCache shares the twiddle tables of transforms with the same
// length, precision and direction. It is owned by the caller, never global,
// and safe for concurrent use.
type TwiddleCache struct {
	c *dct.Cache
}

func NewTwiddleCache() *TwiddleCache {
	return &TwiddleCache{c: dct.NewCache()}
}

// Len reports the number of cached tables.
func (c *TwiddleCache) Len() int {
	if c == nil {
		return 0
	}
	return c.c.Len()
}

func (c *TwiddleCache) get() *dct.Cache {
	if c == nil {
		return nil
	}
	return c.c
}

// OperatorCache keeps one Operator per (n, kind, norm). Cached operators are
// read-only and may be shared between goroutines.
type OperatorCache struct {
	data sync.Map
}

type operatorKey struct {
	n    int
	kind Kind
	norm Norm
}

func NewOperatorCache() *OperatorCache {
	var c OperatorCache
	return &c
}

func (c *OperatorCache) Get(n int, kind Kind, norm Norm) (*Operator, error) {
	key := operatorKey{n: n, kind: kind, norm: norm}
	if v, ok := c.data.Load(key); ok {
		return v.(*Operator), nil
	}
	op, err := NewOperator(n, kind, norm)
	if err != nil {
		return nil, err
	}
	actual, _ := c.data.LoadOrStore(key, op)
	return actual.(*Operator), nil
}
