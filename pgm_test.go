package pgmdct

import (
	"bytes"
	"errors"
	"testing"
)

func makePGM(width, height int, fill func(x, y int) uint8) []byte {
	var buf bytes.Buffer
	img := &Raster{Width: width, Height: height, MaxVal: 255, Pix: make([]uint8, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*width+x] = fill(x, y)
		}
	}
	if err := WritePGM(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestParsePGM(t *testing.T) {
	data := makePGM(16, 8, func(x, y int) uint8 { return uint8(y*16 + x) })
	img, err := ParsePGM(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 16 || img.Height != 8 || img.MaxVal != 255 {
		t.Fatalf("header = %dx%d maxval %d, want 16x8 maxval 255", img.Width, img.Height, img.MaxVal)
	}
	if len(img.Pix) != 16*8 {
		t.Fatalf("len(Pix) = %d, want %d", len(img.Pix), 16*8)
	}
	if img.Pix[17] != 17 {
		t.Errorf("Pix[17] = %d, want 17", img.Pix[17])
	}
}

func TestParsePGMComments(t *testing.T) {
	raw := []byte("P5 # raw grayscale\n# created by pgmdct tests\n2 2\n255\n\x00\x40\x80\xff")
	img, err := ParsePGM(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0x00, 0x40, 0x80, 0xff}
	for i, v := range want {
		if img.Pix[i] != v {
			t.Errorf("Pix[%d] = %#x, want %#x", i, img.Pix[i], v)
		}
	}
}

func TestParsePGMBadMagic(t *testing.T) {
	_, err := ParsePGM(bytes.NewReader([]byte("P2\n2 2\n255\n0 0 0 0\n")))
	if !errors.Is(err, ErrMalformedPGM) {
		t.Fatalf("err = %v, want ErrMalformedPGM", err)
	}
}

func TestParsePGMTruncatedRaster(t *testing.T) {
	_, err := ParsePGM(bytes.NewReader([]byte("P5\n4 4\n255\n\x00\x01")))
	if !errors.Is(err, ErrMalformedPGM) {
		t.Fatalf("err = %v, want ErrMalformedPGM", err)
	}
}

func TestParsePGMTwoByteSamples(t *testing.T) {
	_, err := ParsePGM(bytes.NewReader([]byte("P5\n2 2\n65535\n\x00\x00\x00\x00\x00\x00\x00\x00")))
	if !errors.Is(err, ErrUnsupportedMaxVal) {
		t.Fatalf("err = %v, want ErrUnsupportedMaxVal", err)
	}
}

func TestParsePGMBadDimensions(t *testing.T) {
	for _, raw := range []string{
		"P5\n0 4\n255\n",
		"P5\n4 x\n255\n",
		"P5\n4 4\n0\n",
	} {
		if _, err := ParsePGM(bytes.NewReader([]byte(raw))); !errors.Is(err, ErrMalformedPGM) {
			t.Errorf("ParsePGM(%q) err = %v, want ErrMalformedPGM", raw, err)
		}
	}
}

func TestWritePGMRoundTrip(t *testing.T) {
	data := makePGM(8, 16, func(x, y int) uint8 { return uint8(x * y) })
	img, err := ParsePGM(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WritePGM(&buf, img); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Error("write/parse/write did not reproduce the original stream")
	}
}
