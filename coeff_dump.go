package pgmdct

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// CoeffDump is a JSON-friendly snapshot of a compression result. It is a
// debugging artifact, not a storage format: no entropy coding is applied and
// the layout is not stable across versions.
type CoeffDump struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	BlockSize int       `json:"block_size"`
	Quality   int       `json:"quality"`
	Blocks    [][]int16 `json:"blocks"`
}

// BuildCoeffDump converts a CompressResult into its JSON representation.
func BuildCoeffDump(res *CompressResult) *CoeffDump {
	d := &CoeffDump{
		Width:     res.Width,
		Height:    res.Height,
		BlockSize: res.BlockSize,
		Quality:   res.Quality,
		Blocks:    make([][]int16, len(res.Blocks)),
	}
	for i := range res.Blocks {
		b := make([]int16, blockArea)
		copy(b, res.Blocks[i][:])
		d.Blocks[i] = b
	}
	return d
}

// WriteCoeffDumpFile writes the quantized coefficient blocks of res as
// indented JSON.
func WriteCoeffDumpFile(path string, res *CompressResult) error {
	payload, err := json.MarshalIndent(BuildCoeffDump(res), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), payload, 0o644)
}
