// Package profiles generates the placeholder profile and message icons.
package profiles

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/xob0t/profileicons/pkg/generator"
	"github.com/xob0t/profileicons/pkg/label"
)

const (
	// OutputDir is the directory the command writes into, relative to the working directory.
	OutputDir = "icon"
	// Size is the width and height of every icon in pixels.
	Size = 200
)

var (
	// ErrCreateDir is returned when the output directory cannot be created.
	ErrCreateDir = errors.New("create output directory")
	// ErrWriteImage is returned when an icon cannot be rendered, encoded or written.
	ErrWriteImage = errors.New("write image")
)

// labelColor is the text color stamped on every icon.
var labelColor = color.RGBA{255, 255, 255, 255}

// ProfileSpec describes one icon.
type ProfileSpec struct {
	Filename string
	Color    color.RGBA
	Label    string
}

// Defaults returns the icons to generate, in generation order.
func Defaults() []ProfileSpec {
	return []ProfileSpec{
		{Filename: "profile_yuki.png", Color: generator.RGB(52, 152, 219), Label: "Yuki"},
		{Filename: "profile_ren.png", Color: generator.RGB(231, 76, 60), Label: "Ren"},
		{Filename: "profile_keiji.png", Color: generator.RGB(46, 204, 113), Label: "Keiji"},
		{Filename: "ic_message.png", Color: generator.RGB(155, 89, 182), Label: "MSG"},
	}
}

// Run writes every default icon into dir, creating dir if needed, and
// reports each file on out. The first failure stops the run.
func Run(dir string, out io.Writer) error {
	r, err := label.NewRenderer()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteImage, err)
	}
	defer r.Close()

	return Generate(dir, Defaults(), r, out)
}

// Generate writes specs into dir using r for the labels.
func Generate(dir string, specs []ProfileSpec, r *label.Renderer, out io.Writer) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
	}

	for _, spec := range specs {
		img := Render(spec, r)

		if err := generator.Generate(filepath.Join(dir, spec.Filename), generator.Config{Image: img}); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWriteImage, spec.Filename, err)
		}
		fmt.Fprintf(out, "Created %s\n", spec.Filename)
	}

	return nil
}

// Render draws a single icon: background fill plus the label centered on the canvas.
func Render(spec ProfileSpec, r *label.Renderer) *image.RGBA {
	img := generator.NewSolidImage(Size, Size, spec.Color)
	r.DrawCentered(img, spec.Label, image.Pt(Size/2, Size/2), labelColor)
	return img
}
