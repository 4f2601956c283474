// Package dct implements the FFT-based DCT-II and DCT-III on single rows.
//
// The forward transform reorders the row (Interleave) so that a length-n
// complex FFT yields the DCT-II after multiplying by e^{-ijπ/(2n)}. The
// inverse rebuilds the half spectrum a real inverse FFT expects from the
// coefficients, then undoes the reorder (Deinterleave).
package dct

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Kernel transforms rows of a fixed length. It owns the gonum FFT work
// arrays and scratch buffers, so a Kernel must not be shared between
// goroutines.
type Kernel[T constraints.Float] struct {
	n  int
	tw *Twiddle[T]

	cfft *fourier.CmplxFFT
	rfft *fourier.FFT

	perm []T
	seq  []complex128
	spec []complex128
	out  []float64
}

// NewKernel returns a kernel for rows of length tw.Len(). tw must be built
// with Forward for Kernel.Forward and Inverse for Kernel.Inverse.
func NewKernel[T constraints.Float](tw *Twiddle[T]) *Kernel[T] {
	n := tw.Len()
	return &Kernel[T]{
		n:    n,
		tw:   tw,
		perm: make([]T, n),
		spec: make([]complex128, n),
	}
}

func (k *Kernel[T]) Len() int { return k.n }

// Forward writes the DCT-II of src into dst. Without ortho the result is
// 2·Σ x[m]·cos(πj(2m+1)/(2n)).
func (k *Kernel[T]) Forward(dst, src []T, ortho bool) {
	n := k.n
	if k.cfft == nil {
		k.cfft = fourier.NewCmplxFFT(n)
		k.seq = make([]complex128, n)
	}

	Interleave(k.perm, src[:n])
	for i, v := range k.perm {
		k.seq[i] = complex(float64(v), 0)
	}
	if n == 1 {
		// A length-1 DFT is the identity.
		copy(k.spec, k.seq)
	} else {
		k.spec = k.cfft.Coefficients(k.spec, k.seq)
	}

	wr, wi := k.tw.Cos, k.tw.Sin
	for j := range n {
		dst[j] = T(real(k.spec[j]))*wr[j] - T(imag(k.spec[j]))*wi[j]
	}
	if ortho {
		dst[0] /= 2 * T(math.Sqrt(float64(n)))
		s := 2 * T(math.Sqrt(float64(n)/2))
		for j := 1; j < n; j++ {
			dst[j] /= s
		}
	}
	for j := range n {
		dst[j] *= 2
	}
}

// Inverse writes the DCT-III of src into dst, undoing Forward with the same
// ortho setting.
func (k *Kernel[T]) Inverse(dst, src []T, ortho bool) {
	n := k.n
	if k.rfft == nil {
		k.rfft = fourier.NewFFT(n)
		k.out = make([]float64, n)
	}

	xv := k.perm
	for j := range n {
		xv[j] = src[j] / 2
	}
	if ortho {
		xv[0] *= 2 * T(math.Sqrt(float64(n)))
		s := 2 * T(math.Sqrt(float64(n)/2))
		for j := 1; j < n; j++ {
			xv[j] *= s
		}
	}

	// The real inverse FFT only reads the first n/2+1 values.
	half := n/2 + 1
	wr, wi := k.tw.Cos, k.tw.Sin
	for j := range half {
		vr := xv[j]
		var vi T
		if j > 0 {
			vi = -xv[n-j]
		}
		k.spec[j] = complex(
			float64(vr*wr[j]-vi*wi[j]),
			float64(vr*wi[j]+vi*wr[j]),
		)
	}
	if n == 1 {
		k.out[0] = real(k.spec[0])
	} else {
		k.out = k.rfft.Sequence(k.out, k.spec[:half])
	}

	// gonum does not normalize the inverse transform.
	scale := 1 / float64(n)
	for i, v := range k.out {
		xv[i] = T(v * scale)
	}
	Deinterleave(dst[:n], xv)
}
