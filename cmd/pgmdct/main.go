package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vearutop/pgmdct"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "compress":
		if err := runCompress(os.Args[2:]); err != nil {
			fail(err)
		}
	case "decompress":
		if err := runDecompress(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pgmdct <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  compress   -in input.pgm [-q 75] [-w W -h H] [-coeffs-out coeffs.json] [-workers N]")
	fmt.Fprintln(os.Stderr, "  decompress -in input.pgm")
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	inPath := fs.String("in", "", "input binary PGM (P5)")
	q := fs.Int("q", pgmdct.DefaultQuality, "quality, 0-100, higher is better")
	width := fs.Uint("w", 0, "resample to this width before compressing")
	height := fs.Uint("h", 0, "resample to this height before compressing")
	coeffsOut := fs.String("coeffs-out", "", "write quantized coefficient blocks as JSON")
	workers := fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	slog.Info("compressing image", "path", *inPath, "quality", *q)
	res, err := pgmdct.CompressFile(*inPath, func(o *pgmdct.CompressOptions) {
		o.Quality = *q
		o.Workers = *workers
		o.ResizeWidth = *width
		o.ResizeHeight = *height
		o.CoeffsOut = *coeffsOut
	})
	if err != nil {
		return err
	}
	slog.Info("compressed image",
		"width", res.Width,
		"height", res.Height,
		"blocks", len(res.Blocks),
		"zero_coeffs", res.ZeroCoeffs,
		"ratio", fmt.Sprintf("%.2f", res.Ratio),
	)
	return nil
}

func runDecompress(args []string) error {
	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)
	inPath := fs.String("in", "", "input compressed image")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	slog.Info("decompressing image", "path", *inPath)
	if _, err := pgmdct.DecompressFile(*inPath); err != nil {
		return err
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
