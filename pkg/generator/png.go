// png.go — File writers.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// writePNG encodes img to a PNG file at the given path. Opaque images are
// stored as 8-bit RGB truecolor.
func writePNG(output string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}

// writeFile creates output and hands it to enc.
func writeFile(output string, enc func(io.Writer) error) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := enc(f); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	return f.Close()
}
