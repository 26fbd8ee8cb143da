package pgmdct

// Decompress will rebuild a raster from quantized coefficient blocks by
// dequantizing, applying the inverse DCT and undoing the level shift.
// The inverse path is not implemented yet; this always returns
// ErrNotImplemented.
func Decompress(blocks []CoeffBlock, width, height int) (*Raster, error) {
	return nil, ErrNotImplemented
}

// DecompressFile is the file-level counterpart of Decompress.
func DecompressFile(path string) (*Raster, error) {
	return nil, ErrNotImplemented
}
