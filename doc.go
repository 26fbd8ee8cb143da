// Package pgmdct implements the forward half of block-based DCT compression
// for grayscale PGM images.
//
// A parsed raster is partitioned into 8x8 blocks, each block is level-shifted
// and transformed with a two-dimensional orthonormal DCT-II, and the resulting
// coefficients are quantized against a JPEG luminance table scaled by the
// requested quality. The output is the ordered sequence of quantized
// coefficient blocks. Entropy coding and the inverse (decompression) path are
// not implemented.
package pgmdct
