// Package label stamps short text labels onto images.
package label

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultSize is the point size of the default face.
	DefaultSize = 16
	defaultDPI  = 72
)

// Renderer draws labels with a single face.
type Renderer struct {
	face font.Face
}

// NewRenderer creates a renderer using the embedded default font.
func NewRenderer() (*Renderer, error) {
	fm, err := NewFontManager()
	if err != nil {
		return nil, err
	}

	face, err := fm.GetFace(DefaultSize, defaultDPI)
	if err != nil {
		return nil, err
	}

	return &Renderer{face: face}, nil
}

// NewRendererWithFace creates a renderer that draws with face.
func NewRendererWithFace(face font.Face) *Renderer {
	return &Renderer{face: face}
}

// DrawCentered draws text so that the midpoint of its ink bounding box lands on at.
func (r *Renderer) DrawCentered(dst draw.Image, text string, at image.Point, col color.Color) {
	if text == "" {
		return
	}

	r.drawString(dst, text, centeredDot(r.face, text, at), col)
}

// Close releases the face.
func (r *Renderer) Close() error {
	return r.face.Close()
}

// centeredDot returns the baseline origin that centers the bounds of text on at.
func centeredDot(face font.Face, text string, at image.Point) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, text)
	midX := (bounds.Min.X + bounds.Max.X) / 2
	midY := (bounds.Min.Y + bounds.Max.Y) / 2

	return fixed.Point26_6{
		X: fixed.I(at.X) - midX,
		Y: fixed.I(at.Y) - midY,
	}
}

// drawString draws text with its baseline origin at dot.
func (r *Renderer) drawString(dst draw.Image, text string, dot fixed.Point26_6, col color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  dot,
	}
	drawer.DrawString(text)
}
