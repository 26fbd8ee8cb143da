package pgmdct

import "errors"

var (
	// ErrInvalidBlockSize is returned when the raster dimensions are not
	// exact multiples of the requested block size.
	ErrInvalidBlockSize = errors.New("block size does not divide raster dimensions")

	// ErrBlockIndexOutOfRange is returned when a block index is outside
	// [0, BlockCount).
	ErrBlockIndexOutOfRange = errors.New("block index out of range")

	// ErrUnsupportedBlockSize is returned when quantization is requested for
	// a block size with no table of matching shape.
	ErrUnsupportedBlockSize = errors.New("unsupported block size for quantization")

	// ErrInvalidQuality is returned when the quality parameter is outside 0-100.
	ErrInvalidQuality = errors.New("invalid quality (must be 0-100)")

	// ErrMalformedPGM is returned when a PGM stream cannot be parsed.
	ErrMalformedPGM = errors.New("malformed PGM")

	// ErrUnsupportedMaxVal is returned for PGM files with multi-byte samples
	// (maxval above 255).
	ErrUnsupportedMaxVal = errors.New("unsupported maxval (only single-byte samples)")

	// ErrNotImplemented is returned by the decompression path.
	ErrNotImplemented = errors.New("not implemented")
)
