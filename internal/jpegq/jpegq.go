// Package jpegq holds the standard JPEG quantization constants shared by the
// compression pipeline.
package jpegq

// Luminance is the luminance quantization table from Annex K of the JPEG
// standard, in row-major (natural) order.
var Luminance = [64]byte{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// Scale derives a quantization table for a quality setting using the IJG
// scaling convention: quality 50 reproduces the base table, higher qualities
// shrink the divisors, lower qualities grow them. Quality is clamped to
// [1, 100] and divisors to [1, 255].
func Scale(base *[64]byte, quality int) [64]byte {
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}

	var scale int
	if quality < 50 {
		scale = 5000 / quality
	} else {
		scale = 200 - quality*2
	}

	var out [64]byte
	for i, b := range base {
		x := (int(b)*scale + 50) / 100
		if x < 1 {
			x = 1
		} else if x > 255 {
			x = 255
		}
		out[i] = byte(x)
	}
	return out
}
