package pgmdct

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// pgmMagic identifies the binary (raw) grayscale PGM variant.
const pgmMagic = "P5"

// ParsePGM reads a binary PGM (P5) stream into a Raster.
//
// The header is the magic number, width, height and maxval as ASCII decimal
// tokens separated by whitespace, with '#' comments allowed between tokens.
// A single whitespace character separates the header from the raster, which
// holds width*height samples in row-major order. Only single-byte samples
// (maxval <= 255) are supported.
func ParsePGM(r io.Reader) (*Raster, error) {
	br := bufio.NewReader(r)

	magic, err := nextToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrMalformedPGM, err)
	}
	if magic != pgmMagic {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrMalformedPGM, magic)
	}

	width, err := nextInt(br, "width")
	if err != nil {
		return nil, err
	}
	height, err := nextInt(br, "height")
	if err != nil {
		return nil, err
	}
	maxVal, err := nextInt(br, "maxval")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrMalformedPGM, width, height)
	}
	if maxVal <= 0 || maxVal >= 65536 {
		return nil, fmt.Errorf("%w: maxval %d out of range", ErrMalformedPGM, maxVal)
	}
	if maxVal > maxSampleValue {
		return nil, fmt.Errorf("%w: maxval %d", ErrUnsupportedMaxVal, maxVal)
	}

	pix := make([]uint8, width*height)
	if _, err := io.ReadFull(br, pix); err != nil {
		return nil, fmt.Errorf("%w: raster truncated: %v", ErrMalformedPGM, err)
	}

	return &Raster{
		Width:  width,
		Height: height,
		MaxVal: uint16(maxVal),
		Pix:    pix,
	}, nil
}

// ParsePGMFile reads a binary PGM file into a Raster.
func ParsePGMFile(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := ParsePGM(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return img, nil
}

// WritePGM writes a Raster as a binary PGM (P5) stream.
func WritePGM(w io.Writer, img *Raster) error {
	if len(img.Pix) != img.Width*img.Height {
		return fmt.Errorf("%w: %d samples for %dx%d raster", ErrMalformedPGM, len(img.Pix), img.Width, img.Height)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", pgmMagic, img.Width, img.Height, img.MaxVal)
	bw.Write(img.Pix)
	return bw.Flush()
}

// WritePGMFile writes a Raster as a binary PGM file.
func WritePGMFile(path string, img *Raster) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := WritePGM(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// nextToken returns the next whitespace-delimited header token, skipping
// '#' comments that run to end of line.
func nextToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			if len(tok) > 0 {
				// Comment terminates the token like whitespace would.
				if err := br.UnreadByte(); err != nil {
					return "", err
				}
				return string(tok), nil
			}
			inComment = true
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func nextInt(br *bufio.Reader, field string) (int, error) {
	tok, err := nextToken(br)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", ErrMalformedPGM, field, err)
	}
	n := 0
	if len(tok) == 0 {
		return 0, fmt.Errorf("%w: empty %s", ErrMalformedPGM, field)
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformedPGM, field, tok)
		}
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			return 0, fmt.Errorf("%w: %s %q too large", ErrMalformedPGM, field, tok)
		}
	}
	return n, nil
}
