package pgmdct

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const dctEpsilon = 1e-9

func TestLevelShiftBlock(t *testing.T) {
	block := make([]uint8, blockArea)
	for i := range block {
		block[i] = uint8(i * 4)
	}
	shifted := levelShiftBlock(block)
	for i := range shifted {
		want := float64(block[i]) - 128.0
		if shifted[i] != want {
			t.Fatalf("shifted[%d] = %v, want %v", i, shifted[i], want)
		}
	}
}

func TestAlpha(t *testing.T) {
	if !scalar.EqualWithinAbs(alpha(0), 1.0/math.Sqrt(2), dctEpsilon) {
		t.Errorf("alpha(0) = %v, want 1/sqrt(2)", alpha(0))
	}
	for i := 1; i < BlockSize; i++ {
		if alpha(i) != 1.0 {
			t.Errorf("alpha(%d) = %v, want 1", i, alpha(i))
		}
	}
}

// A constant block has a single DC term: G(0,0) = 8*(k-128), everything else
// zero.
func TestFdctConstantBlock(t *testing.T) {
	for _, k := range []uint8{0, 77, 128, 255} {
		block := make([]uint8, blockArea)
		for i := range block {
			block[i] = k
		}
		coeffs := fdctBlockDirect(levelShiftBlock(block))

		wantDC := 8.0 * (float64(k) - 128.0)
		if !scalar.EqualWithinAbs(coeffs[0], wantDC, 1e-6) {
			t.Errorf("k=%d: G(0,0) = %v, want %v", k, coeffs[0], wantDC)
		}
		for i := 1; i < blockArea; i++ {
			if !scalar.EqualWithinAbs(coeffs[i], 0, 1e-6) {
				t.Errorf("k=%d: G at flat %d = %v, want 0", k, i, coeffs[i])
			}
		}
	}
}

func TestFdctMidpointBlockIsZero(t *testing.T) {
	block := make([]uint8, blockArea)
	for i := range block {
		block[i] = 128
	}
	coeffs := fdctBlock(levelShiftBlock(block))
	for i, c := range coeffs {
		if !scalar.EqualWithinAbs(c, 0, dctEpsilon) {
			t.Fatalf("coefficient %d = %v, want 0", i, c)
		}
	}
}

// The separable matrix form must agree with the direct evaluation.
func TestFdctMatrixMatchesDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for trial := 0; trial < 25; trial++ {
		block := make([]uint8, blockArea)
		for i := range block {
			block[i] = uint8(rng.Intn(256))
		}
		direct := fdctBlockDirect(levelShiftBlock(block))
		matrix := fdctBlock(levelShiftBlock(block))
		for i := range direct {
			if !scalar.EqualWithinAbs(direct[i], matrix[i], dctEpsilon) {
				t.Fatalf("trial %d: coefficient %d: direct %v, matrix %v", trial, i, direct[i], matrix[i])
			}
		}
	}
}

// Orthonormality preserves energy: sum of squares in the spatial and
// frequency domains match (Parseval).
func TestFdctPreservesEnergy(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	block := make([]uint8, blockArea)
	for i := range block {
		block[i] = uint8(rng.Intn(256))
	}
	shifted := levelShiftBlock(block)
	coeffs := fdctBlockDirect(shifted)

	var spatial, freq float64
	for i := range shifted {
		spatial += shifted[i] * shifted[i]
		freq += coeffs[i] * coeffs[i]
	}
	if !scalar.EqualWithinAbs(spatial, freq, 1e-6) {
		t.Fatalf("energy: spatial %v, frequency %v", spatial, freq)
	}
}
