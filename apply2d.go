package fftdct

import (
	"fmt"

	"github.com/yyyoichi/fftdct/internal/tensor"
)

// Transformer is a fixed 1D transform over rows of length Len.
// *Transform[T] and, for float64, *Operator implement it.
type Transformer[T Float] interface {
	Len() int
	Apply(x []T) ([]T, error)
}

// Apply2D applies tw along the last axis and th along the second-to-last
// axis of the row-major array x with the given shape (rank >= 2). The
// result is a new slice with the same shape; x is not modified.
//
// The two passes are independent, so th and tw may differ in length, kind
// and norm.
func Apply2D[T Float](x []T, shape []int, th, tw Transformer[T]) ([]T, error) {
	if th == nil || tw == nil {
		return nil, fmt.Errorf("%w: nil transform", ErrInvalidArgument)
	}
	rank := len(shape)
	if rank < 2 {
		return nil, fmt.Errorf("%w: rank %d < 2", ErrDimensionMismatch, rank)
	}
	size, ok := tensor.Volume(shape)
	if !ok {
		return nil, fmt.Errorf("%w: negative dimension in shape %v", ErrInvalidArgument, shape)
	}
	if size != len(x) {
		return nil, fmt.Errorf("%w: shape %v holds %d values, got %d", ErrDimensionMismatch, shape, size, len(x))
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrInvalidArgument)
	}
	h, w := shape[rank-2], shape[rank-1]
	if tw.Len() != w {
		return nil, fmt.Errorf("%w: width transform length %d, last axis %d", ErrDimensionMismatch, tw.Len(), w)
	}
	if th.Len() != h {
		return nil, fmt.Errorf("%w: height transform length %d, axis %d", ErrDimensionMismatch, th.Len(), h)
	}

	rows, err := tw.Apply(x)
	if err != nil {
		return nil, err
	}
	cols := make([]T, size)
	tensor.SwapLast(cols, rows, h, w)
	if cols, err = th.Apply(cols); err != nil {
		return nil, err
	}
	out := make([]T, size)
	tensor.SwapLast(out, cols, w, h)
	return out, nil
}
