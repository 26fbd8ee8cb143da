package pgmdct

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// dctBasis is the orthonormal 8-point DCT-II matrix T with
// T[k][n] = s(k) * cos(pi*k*(2n+1)/16), s(0) = sqrt(1/8), s(k>0) = sqrt(2/8).
// For a block g, T g T^T equals the direct per-coefficient evaluation in
// fdctBlockDirect: s(u)*s(v) folds to the 0.25*alpha(u)*alpha(v) scale.
var dctBasis = newDCTBasis(BlockSize)

func newDCTBasis(n int) *mat.Dense {
	t := mat.NewDense(n, n, nil)
	scale0 := math.Sqrt(1.0 / float64(n))
	scaleK := math.Sqrt(2.0 / float64(n))
	for k := 0; k < n; k++ {
		scale := scaleK
		if k == 0 {
			scale = scale0
		}
		for i := 0; i < n; i++ {
			t.Set(k, i, scale*math.Cos(math.Pi*float64(k)*float64(2*i+1)/(2.0*float64(n))))
		}
	}
	return t
}

// fdctBlock computes the 2D DCT-II of a level-shifted 8x8 block as the
// separable matrix product T g T^T. Output matches fdctBlockDirect to within
// floating-point tolerance at a fraction of the multiplies.
func fdctBlock(shifted []float64) []float64 {
	g := mat.NewDense(BlockSize, BlockSize, shifted)
	var tmp, out mat.Dense
	tmp.Mul(dctBasis, g)
	out.Mul(&tmp, dctBasis.T())

	coeffs := make([]float64, blockArea)
	for u := 0; u < BlockSize; u++ {
		copy(coeffs[u*BlockSize:], out.RawRowView(u))
	}
	return coeffs
}
