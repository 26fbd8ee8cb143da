package pgmdct

import "math"

// levelShiftBlock recenters 8-bit samples around zero by subtracting 128.
func levelShiftBlock(block []uint8) []float64 {
	shifted := make([]float64, len(block))
	for i, s := range block {
		shifted[i] = float64(s) - levelShiftMid
	}
	return shifted
}

// alpha is the normalizing scale factor that makes the DCT orthonormal.
func alpha(i int) float64 {
	if i == 0 {
		return 1.0 / math.Sqrt2
	}
	return 1.0
}

// fdctBlockDirect evaluates the 2D DCT-II of a level-shifted 8x8 block
// directly from the definition:
//
//	G(u,v) = 0.25 * alpha(u) * alpha(v) *
//	         sum(x=0..7) sum(y=0..7)
//	           g(x,y) * cos((2x+1)*u*pi/16) * cos((2y+1)*v*pi/16)
//
// This is O(n^4) over the block side; it serves as the reference the
// matrix-form transform in dct_mat.go is checked against.
func fdctBlockDirect(shifted []float64) []float64 {
	out := make([]float64, blockArea)
	for u := 0; u < BlockSize; u++ {
		for v := 0; v < BlockSize; v++ {
			scale := 0.25 * alpha(u) * alpha(v)
			sum := 0.0
			for x := 0; x < BlockSize; x++ {
				cosX := math.Cos(float64(2*x+1) * float64(u) * math.Pi / 16.0)
				for y := 0; y < BlockSize; y++ {
					cosY := math.Cos(float64(2*y+1) * float64(v) * math.Pi / 16.0)
					sum += shifted[BlockSize*x+y] * cosX * cosY
				}
			}
			out[BlockSize*u+v] = scale * sum
		}
	}
	return out
}
