package fftdct

import "gonum.org/v1/gonum/mat"

// BuildMatrix returns the n×n matrix M of a transform: M·x equals the
// transform of the column vector x. It is derived by transforming the
// identity and transposing the result.
func BuildMatrix(n int, kind Kind, norm Norm) (*mat.Dense, error) {
	t, err := New[float64](n, kind, WithNorm(norm))
	if err != nil {
		return nil, err
	}
	eye := make([]float64, n*n)
	for i := range n {
		eye[i*n+i] = 1
	}
	rows, err := t.Apply(eye)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(mat.NewDense(n, n, rows).T()), nil
}

// Operator is a transform in fixed linear operator form: a frozen matrix
// applied by matrix multiplication. It suits pipelines that splice the
// transform in as a linear layer.
type Operator struct {
	n    int
	kind Kind
	norm Norm
	m    *mat.Dense
}

func NewOperator(n int, kind Kind, norm Norm) (*Operator, error) {
	m, err := BuildMatrix(n, kind, norm)
	if err != nil {
		return nil, err
	}
	return &Operator{n: n, kind: kind, norm: norm, m: m}, nil
}

func (o *Operator) Len() int { return o.n }

func (o *Operator) Kind() Kind { return o.kind }

func (o *Operator) Norm() Norm { return o.norm }

// Matrix returns a copy of the operator matrix.
func (o *Operator) Matrix() *mat.Dense {
	return mat.DenseCopyOf(o.m)
}

// Apply multiplies every length-n row of x by the operator, Y = X·Mᵀ.
func (o *Operator) Apply(x []float64) ([]float64, error) {
	if err := checkBatch(len(x), o.n); err != nil {
		return nil, err
	}
	rows := len(x) / o.n
	var y mat.Dense
	y.Mul(mat.NewDense(rows, o.n, x), o.m.T())
	return y.RawMatrix().Data, nil
}
