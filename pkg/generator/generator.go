// Package generator provides solid-color canvases and file output for them.
//
// All output follows one pipeline: create an image.Image first, then encode
// it in the format implied by the output file extension.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Config holds parameters for image generation.
type Config struct {
	Width  int         // Pixel width (default: 200)
	Height int         // Pixel height (default: 200)
	Color  color.RGBA  // Background fill
	Image  image.Image // Pre-rendered image; overrides Width/Height/Color
}

// Generate creates an output file. The format is inferred from the file extension:
//   - ".png" → PNG image
//   - ".bmp" → 24-bit BMP image
//   - ".jpg", ".jpeg" → JPEG image
//
// If cfg.Image is nil, a solid-color image is created from cfg.Color/Width/Height.
// An existing file at output is overwritten.
func Generate(output string, cfg Config) error {
	img := resolveImage(cfg)

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writePNG(output, img)
	case ".bmp", ".jpg", ".jpeg":
		return writeFile(output, func(w io.Writer) error {
			return encode(w, ext, img)
		})
	default:
		return fmt.Errorf("unsupported format %q: use .png, .bmp or .jpg", ext)
	}
}

// GenerateToWriter writes an image to an io.Writer. The format is specified by ext.
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	return encode(w, strings.ToLower(ext), resolveImage(cfg))
}

func encode(w io.Writer, ext string, img image.Image) error {
	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	default:
		return fmt.Errorf("unsupported format %q: use .png, .bmp or .jpg", ext)
	}
}

// resolveImage returns the source image from config, creating a solid-color
// image if none is provided.
func resolveImage(cfg Config) image.Image {
	if cfg.Image != nil {
		return cfg.Image
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 200
	}
	if h <= 0 {
		h = 200
	}
	c := cfg.Color
	c.A = 255

	return NewSolidImage(w, h, c)
}
