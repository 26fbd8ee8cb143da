package pgmdct

// CoeffBlock holds the quantized DCT coefficients of one 8x8 block.
// The element at flat position u*BlockSize+v is floor(G(u,v)/Q(u,v)),
// where (0,0) is the DC term.
type CoeffBlock [blockArea]int16

// CompressOptions controls the compression pipeline.
type CompressOptions struct {
	// Quality ranges from 0 to 100, higher is better. Zero means
	// DefaultQuality. It scales the quantization table divisors; 50
	// reproduces the unscaled JPEG luminance table.
	Quality int

	// Table overrides the quantization base table. When set, Quality is
	// ignored and the table is used as-is.
	Table *[blockArea]byte

	// Workers bounds the number of goroutines transforming blocks.
	// Zero or negative means GOMAXPROCS.
	Workers int

	// ResizeWidth and ResizeHeight, when both non-zero, resample the raster
	// before compression. Only honored by CompressFile; the resulting
	// dimensions must still be multiples of BlockSize.
	ResizeWidth  uint
	ResizeHeight uint

	// CoeffsOut, when non-empty, makes CompressFile write the quantized
	// coefficient blocks as JSON to this path.
	CoeffsOut string
}

// CompressResult contains the quantized coefficient blocks and summary
// statistics for one compressed raster.
type CompressResult struct {
	// Blocks is ordered by ascending block index (row-major block order,
	// index 0 is the top-left block).
	Blocks []CoeffBlock

	Width     int
	Height    int
	BlockSize int
	Quality   int

	// ZeroCoeffs counts quantized coefficients that came out zero.
	ZeroCoeffs int
	// Ratio estimates the achievable compression ratio as raw sample bytes
	// over two bytes per surviving non-zero coefficient. Entropy coding is
	// not implemented, so this is an upper-bound estimate.
	Ratio float64
}
