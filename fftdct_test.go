package fftdct_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/yyyoichi/fftdct"
)

var norms = []fftdct.Norm{fftdct.NormNone, fftdct.NormOrtho}

func testRoundTrip[T fftdct.Float](t *testing.T, tolerance float64) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 4, 5, 8, 17, 256} {
		for _, b := range []int{1, 4} {
			for _, norm := range norms {
				t.Run(fmt.Sprintf("n%d_b%d_%s", n, b, norm), func(t *testing.T) {
					x := randBatch[T](rng, n*b, 1)
					coeff, err := fftdct.DCT(x, n, norm)
					require.NoError(t, err)
					got, err := fftdct.IDCT(coeff, n, norm)
					require.NoError(t, err)

					if diff := cmp.Diff(toFloat64(x), toFloat64(got), cmpopts.EquateApprox(0, tolerance)); diff != "" {
						t.Errorf("round trip mismatch (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("float64", func(t *testing.T) { testRoundTrip[float64](t, 1e-9) })
	t.Run("float32", func(t *testing.T) { testRoundTrip[float32](t, 1e-4) })
}

func TestDCT_KnownValues(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	exp := []float64{20, -6.308644059797899, 0, -0.4483415291679763}

	got, err := fftdct.DCT(x, 4, fftdct.NormNone)
	require.NoError(t, err)
	for i := range exp {
		assert.InDelta(t, exp[i], got[i], 1e-5, "coefficient %d", i)
	}
	direct := directDCT(x, 4, fftdct.NormNone)
	for i := range direct {
		assert.InDelta(t, direct[i], got[i], 1e-9, "coefficient %d", i)
	}

	got32, err := fftdct.DCT([]float32{1, 2, 3, 4}, 4, fftdct.NormNone)
	require.NoError(t, err)
	for i := range exp {
		assert.InDelta(t, exp[i], float64(got32[i]), 1e-4, "float32 coefficient %d", i)
	}
}

func TestDCT_MatchesCosineSum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 3, 6, 9, 16, 31} {
		for _, norm := range norms {
			t.Run(fmt.Sprintf("n%d_%s", n, norm), func(t *testing.T) {
				x := randBatch[float64](rng, 3*n, 100)
				got, err := fftdct.DCT(x, n, norm)
				require.NoError(t, err)
				if diff := cmp.Diff(directDCT(x, n, norm), got, cmpopts.EquateApprox(0, 1e-8)); diff != "" {
					t.Errorf("DCT mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestDCT_Linearity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 12
	a, b := 2.5, -1.25
	for _, norm := range norms {
		for _, tr := range []struct {
			name string
			fn   func([]float64, int, fftdct.Norm) ([]float64, error)
		}{
			{"dct", fftdct.DCT[float64]},
			{"idct", fftdct.IDCT[float64]},
		} {
			t.Run(fmt.Sprintf("%s_%s", tr.name, norm), func(t *testing.T) {
				x := randBatch[float64](rng, 2*n, 5)
				y := randBatch[float64](rng, 2*n, 5)
				mix := make([]float64, len(x))
				floats.AddScaledTo(mix, floats.ScaleTo(make([]float64, len(x)), a, x), b, y)

				tx, err := tr.fn(x, n, norm)
				require.NoError(t, err)
				ty, err := tr.fn(y, n, norm)
				require.NoError(t, err)
				tmix, err := tr.fn(mix, n, norm)
				require.NoError(t, err)

				exp := make([]float64, len(x))
				floats.AddScaledTo(exp, floats.ScaleTo(make([]float64, len(x)), a, tx), b, ty)
				if diff := cmp.Diff(exp, tmix, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
					t.Errorf("linearity mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestDCT_Parseval(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 2, 7, 64} {
		t.Run(fmt.Sprintf("n%d", n), func(t *testing.T) {
			x := randBatch[float64](rng, n, 3)
			coeff, err := fftdct.DCT(x, n, fftdct.NormOrtho)
			require.NoError(t, err)
			assert.InEpsilon(t, floats.Dot(x, x), floats.Dot(coeff, coeff), 1e-10)
		})
	}
}

func TestDCT_SingleSample(t *testing.T) {
	x := []float64{3.5, -1, 0.25, 8}

	got, err := fftdct.DCT(x, 1, fftdct.NormNone)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, -2, 0.5, 16}, got)

	back, err := fftdct.IDCT(got, 1, fftdct.NormNone)
	require.NoError(t, err)
	assert.Equal(t, x, back)

	ortho, err := fftdct.DCT(x, 1, fftdct.NormOrtho)
	require.NoError(t, err)
	assert.Equal(t, x, ortho)

	got32, err := fftdct.DCT([]float32{1.5}, 1, fftdct.NormNone)
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, got32)
}

func TestDCT_DoesNotModifyInput(t *testing.T) {
	x := []float64{4, 3, 2, 1, 0, -1}
	orig := append([]float64(nil), x...)
	_, err := fftdct.DCT(x, 3, fftdct.NormOrtho)
	require.NoError(t, err)
	_, err = fftdct.IDCT(x, 3, fftdct.NormOrtho)
	require.NoError(t, err)
	assert.Equal(t, orig, x)
}

func TestDCT_Errors(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	tests := []struct {
		name string
		fn   func() error
		err  error
	}{
		{"zero_length", func() error { _, err := fftdct.DCT(x, 0, fftdct.NormNone); return err }, fftdct.ErrInvalidArgument},
		{"negative_length", func() error { _, err := fftdct.IDCT(x, -2, fftdct.NormNone); return err }, fftdct.ErrInvalidArgument},
		{"unknown_norm", func() error { _, err := fftdct.DCT(x, 3, fftdct.Norm(9)); return err }, fftdct.ErrInvalidArgument},
		{"empty_batch", func() error { _, err := fftdct.DCT([]float64{}, 3, fftdct.NormNone); return err }, fftdct.ErrInvalidArgument},
		{"nil_batch", func() error { _, err := fftdct.IDCT[float32](nil, 3, fftdct.NormOrtho); return err }, fftdct.ErrInvalidArgument},
		{"ragged_batch", func() error { _, err := fftdct.DCT(x, 4, fftdct.NormNone); return err }, fftdct.ErrDimensionMismatch},
		{"round_trip_length", func() error {
			coeff, err := fftdct.DCT(x, 2, fftdct.NormNone)
			if err != nil {
				return err
			}
			_, err = fftdct.IDCT(coeff, 4, fftdct.NormNone)
			return err
		}, fftdct.ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), tt.err)
		})
	}
}
