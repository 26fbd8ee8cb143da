package pgmdct

const (
	// BlockSize is the side length of the square transform blocks. The
	// quantization tables shipped with this package are 8x8, so the pipeline
	// only operates on this block size.
	BlockSize = 8

	blockArea = BlockSize * BlockSize

	// levelShiftMid recenters 8-bit samples around zero before the transform.
	levelShiftMid = 128.0
)

const (
	// DefaultQuality is the quality used when CompressOptions.Quality is zero.
	DefaultQuality = 75

	maxSampleValue = 255
)
