package fftdct_test

import (
	"math"
	"math/rand"

	"github.com/samber/lo"

	"github.com/yyyoichi/fftdct"
)

func randBatch[T fftdct.Float](rng *rand.Rand, size int, scale float64) []T {
	return lo.Times(size, func(int) T {
		return T((rng.Float64()*2 - 1) * scale)
	})
}

func toFloat64[T fftdct.Float](x []T) []float64 {
	return lo.Map(x, func(v T, _ int) float64 { return float64(v) })
}

// directDCT is the cosine-sum definition of the DCT-II, row by row.
func directDCT(x []float64, n int, norm fftdct.Norm) []float64 {
	out := make([]float64, len(x))
	for off := 0; off < len(x); off += n {
		row := x[off : off+n]
		for k := range n {
			var sum float64
			for m, v := range row {
				sum += v * math.Cos(math.Pi*float64(k)*float64(2*m+1)/float64(2*n))
			}
			switch {
			case norm == fftdct.NormNone:
				sum *= 2
			case k == 0:
				sum *= math.Sqrt(1 / float64(n))
			default:
				sum *= math.Sqrt(2 / float64(n))
			}
			out[off+k] = sum
		}
	}
	return out
}
