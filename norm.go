package fftdct

import (
	"fmt"

	"github.com/yyyoichi/fftdct/internal/dct"
)

// Norm selects the scaling convention of a transform.
type Norm int

const (
	// NormNone leaves the forward transform unnormalized.
	NormNone Norm = iota
	// NormOrtho scales the transform to an orthonormal matrix.
	NormOrtho
)

// ParseNorm accepts "" or "none" for NormNone and "ortho" or "orthonormal"
// for NormOrtho.
func ParseNorm(s string) (Norm, error) {
	switch s {
	case "", "none":
		return NormNone, nil
	case "ortho", "orthonormal":
		return NormOrtho, nil
	}
	return 0, fmt.Errorf("%w: unknown norm %q", ErrInvalidArgument, s)
}

func (n Norm) String() string {
	switch n {
	case NormNone:
		return "none"
	case NormOrtho:
		return "ortho"
	}
	return fmt.Sprintf("Norm(%d)", int(n))
}

func (n Norm) valid() bool {
	return n == NormNone || n == NormOrtho
}

// Kind is the direction of a fixed transform.
type Kind int

const (
	// KindDCT is the forward DCT-II.
	KindDCT Kind = iota
	// KindIDCT is the inverse DCT-III.
	KindIDCT
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "dct":
		return KindDCT, nil
	case "idct":
		return KindIDCT, nil
	}
	return 0, fmt.Errorf("%w: unknown transform type %q", ErrInvalidArgument, s)
}

func (k Kind) String() string {
	switch k {
	case KindDCT:
		return "dct"
	case KindIDCT:
		return "idct"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) valid() bool {
	return k == KindDCT || k == KindIDCT
}

func (k Kind) inverse() Kind {
	if k == KindDCT {
		return KindIDCT
	}
	return KindDCT
}

func (k Kind) direction() dct.Direction {
	if k == KindIDCT {
		return dct.Inverse
	}
	return dct.Forward
}
