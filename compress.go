package pgmdct

import (
	"fmt"
	"runtime"
	"sync"
)

// Compress runs the forward pipeline over the raster: partition into blocks,
// level-shift and DCT each block, quantize the coefficients. Blocks are
// processed concurrently but the result is always ordered by ascending block
// index. On error no partial result is returned.
func Compress(img *Raster, opts ...func(o *CompressOptions)) (*CompressResult, error) {
	opt := CompressOptions{Quality: DefaultQuality}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Quality == 0 {
		opt.Quality = DefaultQuality
	}

	if int(img.MaxVal) > maxSampleValue {
		return nil, fmt.Errorf("%w: maxval %d", ErrUnsupportedMaxVal, img.MaxVal)
	}
	if len(img.Pix) != img.Width*img.Height {
		return nil, fmt.Errorf("invalid raster: %d samples for %dx%d", len(img.Pix), img.Width, img.Height)
	}

	numBlocks, err := img.BlockCount(BlockSize)
	if err != nil {
		return nil, err
	}

	var quantizer *Quantizer
	if opt.Table != nil {
		quantizer, err = NewQuantizer(opt.Table, BlockSize)
	} else {
		quantizer, err = NewQuantizerForQuality(opt.Quality, BlockSize)
	}
	if err != nil {
		return nil, err
	}

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > numBlocks {
		workers = numBlocks
	}

	// Each block depends only on its own samples and the shared read-only
	// quantizer, so indices fan out freely. Workers write into the slot for
	// their index, which keeps the output in block-index order no matter the
	// completion order.
	blocks := make([]CoeffBlock, numBlocks)
	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				block, err := img.Block(BlockSize, idx)
				if err != nil {
					// Unreachable: indices come from BlockCount.
					continue
				}
				blocks[idx] = quantizer.QuantizeBlock(fdctBlock(levelShiftBlock(block)))
			}
		}()
	}
	for idx := 0; idx < numBlocks; idx++ {
		indices <- idx
	}
	close(indices)
	wg.Wait()

	res := &CompressResult{
		Blocks:    blocks,
		Width:     img.Width,
		Height:    img.Height,
		BlockSize: BlockSize,
		Quality:   opt.Quality,
	}
	for i := range blocks {
		for _, c := range blocks[i] {
			if c == 0 {
				res.ZeroCoeffs++
			}
		}
	}
	nonZero := numBlocks*blockArea - res.ZeroCoeffs
	if nonZero > 0 {
		res.Ratio = float64(img.Width*img.Height) / float64(2*nonZero)
	}
	return res, nil
}

// CompressFile parses a binary PGM file and compresses it. When the options
// request resampling, the raster is resized before the pipeline runs; when
// CoeffsOut is set, the quantized coefficient blocks are written there as
// JSON.
func CompressFile(path string, opts ...func(o *CompressOptions)) (*CompressResult, error) {
	opt := CompressOptions{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	img, err := ParsePGMFile(path)
	if err != nil {
		return nil, err
	}

	if opt.ResizeWidth > 0 && opt.ResizeHeight > 0 {
		img, err = ResampleRaster(img, opt.ResizeWidth, opt.ResizeHeight)
		if err != nil {
			return nil, fmt.Errorf("resample %s: %w", path, err)
		}
	}

	res, err := Compress(img, opts...)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", path, err)
	}

	if opt.CoeffsOut != "" {
		if err := WriteCoeffDumpFile(opt.CoeffsOut, res); err != nil {
			return nil, fmt.Errorf("write coefficients: %w", err)
		}
	}
	return res, nil
}
