// Package fftdct computes the Discrete Cosine Transform (DCT-II) and its
// inverse (DCT-III) over batches of real sequences using a length-N FFT,
// and composes two 1D transforms into a separable 2D transform over the
// trailing two axes of a row-major array.
//
// A sequence batch is a row-major slice of B*N values: B independent rows of
// length N. Every function returns a newly allocated slice and never
// modifies its input.
package fftdct

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidArgument reports a bad transform length, an unknown norm or
	// kind, or an empty batch.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDimensionMismatch reports data whose shape does not match the
	// configured transform lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Float is the element type of a sequence batch. The precision of T is used
// throughout the twiddle, combination and normalization steps.
type Float interface {
	constraints.Float
}

// DCT computes the DCT-II of every length-n row of x.
//
// Without normalization the result is
//
//	X[k] = 2 Σ x[m] cos(πk(2m+1)/(2n))
//
// and with NormOrtho the transform matrix is orthonormal.
func DCT[T Float](x []T, n int, norm Norm) ([]T, error) {
	t, err := New[T](n, KindDCT, WithNorm(norm))
	if err != nil {
		return nil, err
	}
	return t.Apply(x)
}

// IDCT computes the DCT-III of every length-n row of x. It is the exact
// inverse of DCT under the same norm.
func IDCT[T Float](x []T, n int, norm Norm) ([]T, error) {
	t, err := New[T](n, KindIDCT, WithNorm(norm))
	if err != nil {
		return nil, err
	}
	return t.Apply(x)
}
