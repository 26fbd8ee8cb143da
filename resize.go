package pgmdct

import (
	"errors"
	"image"

	"github.com/nfnt/resize"
)

// ResampleRaster scales the raster to width x height using Lanczos3
// resampling. Callers that feed the result to Compress must pick dimensions
// that are multiples of BlockSize.
func ResampleRaster(img *Raster, width, height uint) (*Raster, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("invalid target dimensions")
	}
	resized := resize.Resize(width, height, img.gray(), resize.Lanczos3)
	gray, ok := resized.(*image.Gray)
	if !ok {
		// resize preserves the source image type for image.Gray inputs.
		b := resized.Bounds()
		gray = image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				gray.Set(x, y, resized.At(x, y))
			}
		}
	}
	return rasterFromGray(gray), nil
}
