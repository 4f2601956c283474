package dct

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type Direction int

const (
	// Forward twiddles use k[j] = -jπ/(2n).
	Forward Direction = iota
	// Inverse twiddles use k[j] = jπ/(2n).
	Inverse
)

type Precision int

const (
	Float32 Precision = iota + 1
	Float64
)

func PrecisionOf[T constraints.Float]() Precision {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return Float32
	}
	return Float64
}

// Twiddle holds cos(k[j]) and sin(k[j]) for j = 0..n-1 in the element
// precision. A Twiddle is never modified after NewTwiddle returns.
type Twiddle[T constraints.Float] struct {
	Cos, Sin []T
}

func NewTwiddle[T constraints.Float](n int, dir Direction) *Twiddle[T] {
	sign := T(1)
	if dir == Forward {
		sign = -1
	}
	tw := &Twiddle[T]{
		Cos: make([]T, n),
		Sin: make([]T, n),
	}
	step := T(math.Pi) / (2 * T(n))
	for j := range n {
		k := sign * T(j) * step
		tw.Cos[j] = T(math.Cos(float64(k)))
		tw.Sin[j] = T(math.Sin(float64(k)))
	}
	return tw
}

func (tw *Twiddle[T]) Len() int { return len(tw.Cos) }
