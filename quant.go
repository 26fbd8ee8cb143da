package pgmdct

import (
	"fmt"
	"math"

	"github.com/vearutop/pgmdct/internal/jpegq"
)

// Quantizer reduces real-valued DCT coefficients to compact integers by
// dividing each coefficient by a position-dependent divisor and flooring.
// The table is fixed at construction; the zero value is not usable.
type Quantizer struct {
	table [blockArea]byte
}

// NewQuantizer builds a Quantizer over an explicit divisor table. The table
// shape is 8x8, so any other blockSize returns ErrUnsupportedBlockSize.
func NewQuantizer(table *[blockArea]byte, blockSize int) (*Quantizer, error) {
	if blockSize != BlockSize {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBlockSize, blockSize)
	}
	return &Quantizer{table: *table}, nil
}

// NewQuantizerForQuality builds a Quantizer with the standard JPEG luminance
// table scaled for the given quality (0-100). Quality 50 uses the unscaled
// table; zero is treated as the lowest quality.
func NewQuantizerForQuality(quality, blockSize int) (*Quantizer, error) {
	if quality < 0 || quality > 100 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}
	scaled := jpegq.Scale(&jpegq.Luminance, quality)
	return NewQuantizer(&scaled, blockSize)
}

// Table returns a copy of the divisor table in row-major order.
func (q *Quantizer) Table() [blockArea]byte {
	return q.table
}

// QuantizeBlock maps each coefficient to floor(c/divisor). Rounding is toward
// negative infinity, not toward zero: -1.0/16 quantizes to -1.
func (q *Quantizer) QuantizeBlock(coeffs []float64) CoeffBlock {
	var out CoeffBlock
	for i, c := range coeffs {
		out[i] = int16(math.Floor(c / float64(q.table[i])))
	}
	return out
}
