package fftdct

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/fftdct/internal/dct"
)

// Transform is a fixed 1D DCT or IDCT of length n. A Transform is immutable
// and safe for concurrent use.
type Transform[T Float] struct {
	n       int
	kind    Kind
	norm    Norm
	workers int

	cache *TwiddleCache
	tw    *dct.Twiddle[T]
}

// New returns a transform of length n. The norm, the number of row workers
// and a shared twiddle cache can be given as options.
func New[T Float](n int, kind Kind, opts ...Option) (*Transform[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: transform length %d < 1", ErrInvalidArgument, n)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("%w: unknown transform type %s", ErrInvalidArgument, kind)
	}
	var c config
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return newTransform[T](n, kind, c), nil
}

func newTransform[T Float](n int, kind Kind, c config) *Transform[T] {
	return &Transform[T]{
		n:       n,
		kind:    kind,
		norm:    c.norm,
		workers: c.workers,
		cache:   c.twiddles,
		tw:      dct.Twiddles[T](c.twiddles.get(), n, kind.direction()),
	}
}

func (t *Transform[T]) Len() int { return t.n }

func (t *Transform[T]) Kind() Kind { return t.kind }

func (t *Transform[T]) Norm() Norm { return t.norm }

// Inverse returns the transform that undoes t: same length, norm and
// options, opposite kind.
func (t *Transform[T]) Inverse() *Transform[T] {
	return newTransform[T](t.n, t.kind.inverse(), config{
		norm:     t.norm,
		workers:  t.workers,
		twiddles: t.cache,
	})
}

// Matrix returns the n×n matrix M of t, with M·x equal to t applied to x.
func (t *Transform[T]) Matrix() (*mat.Dense, error) {
	return BuildMatrix(t.n, t.kind, t.norm)
}

// Apply transforms every length-n row of x and returns a new slice of the
// same length.
func (t *Transform[T]) Apply(x []T) ([]T, error) {
	if err := checkBatch(len(x), t.n); err != nil {
		return nil, err
	}
	out := make([]T, len(x))
	rows := len(x) / t.n
	workers := min(t.workers, rows)
	if workers <= 1 {
		t.exec(out, x)
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (rows + workers - 1) / workers
	for start := 0; start < rows; start += chunk {
		lo, hi := start*t.n, min(start+chunk, rows)*t.n
		g.Go(func() error {
			t.exec(out[lo:hi:hi], x[lo:hi:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// exec runs one kernel over consecutive rows of src.
func (t *Transform[T]) exec(dst, src []T) {
	k := dct.NewKernel(t.tw)
	ortho := t.norm == NormOrtho
	run := k.Forward
	if t.kind == KindIDCT {
		run = k.Inverse
	}
	for off := 0; off < len(src); off += t.n {
		run(dst[off:off+t.n:off+t.n], src[off:off+t.n:off+t.n], ortho)
	}
}

func checkBatch(size, n int) error {
	if size == 0 {
		return fmt.Errorf("%w: empty batch", ErrInvalidArgument)
	}
	if size%n != 0 {
		return fmt.Errorf("%w: %d values do not form rows of length %d", ErrDimensionMismatch, size, n)
	}
	return nil
}
