package pgmdct

import (
	"fmt"
	"image"
)

// Raster is an immutable grayscale pixel grid. Pix holds Width*Height
// samples in row-major order, top row first, left to right.
type Raster struct {
	Width  int
	Height int
	// MaxVal is the maximum gray value declared by the source file.
	// The pipeline requires MaxVal <= 255.
	MaxVal uint16
	Pix    []uint8
}

// BlockCount returns the number of blockSize x blockSize blocks covering the
// raster. It returns ErrInvalidBlockSize unless blockSize evenly divides both
// dimensions.
func (r *Raster) BlockCount(blockSize int) (int, error) {
	if blockSize <= 0 || r.Width%blockSize != 0 || r.Height%blockSize != 0 {
		return 0, fmt.Errorf("%w: %dx%d raster, block size %d", ErrInvalidBlockSize, r.Width, r.Height, blockSize)
	}
	return (r.Width * r.Height) / (blockSize * blockSize), nil
}

// Block gathers the samples of one block in row-major order within the block.
//
// Blocks are indexed row-major over a grid of Width/blockSize columns and
// Height/blockSize rows of blocks, index 0 being the top-left block. The
// returned slice is a copy; element r*blockSize+c is the sample at row r,
// column c of the block's footprint on the raster.
func (r *Raster) Block(blockSize, index int) ([]uint8, error) {
	n, err := r.BlockCount(blockSize)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= n {
		return nil, fmt.Errorf("%w: index %d, block count %d", ErrBlockIndexOutOfRange, index, n)
	}

	blocksPerRow := r.Width / blockSize
	blockRow := index / blocksPerRow
	blockCol := index % blocksPerRow
	topLeft := blockRow*blockSize*r.Width + blockCol*blockSize

	block := make([]uint8, blockSize*blockSize)
	for row := 0; row < blockSize; row++ {
		src := topLeft + row*r.Width
		copy(block[row*blockSize:(row+1)*blockSize], r.Pix[src:src+blockSize])
	}
	return block, nil
}

// gray converts the raster to an image.Gray sharing no storage with r.
func (r *Raster) gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, r.Pix)
	return img
}

// rasterFromGray converts an image.Gray back into a Raster.
func rasterFromGray(img *image.Gray) *Raster {
	b := img.Bounds()
	out := &Raster{
		Width:  b.Dx(),
		Height: b.Dy(),
		MaxVal: maxSampleValue,
		Pix:    make([]uint8, b.Dx()*b.Dy()),
	}
	for y := 0; y < out.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+out.Width]
		copy(out.Pix[y*out.Width:], row)
	}
	return out
}
