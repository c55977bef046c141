package label

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/basicfont"
)

var (
	bg    = color.RGBA{46, 204, 113, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func newCanvas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return img
}

// inkBounds returns the bounding box of pixels that differ from bg.
func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestDrawCentered(t *testing.T) {
	def, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer def.Close()

	renderers := map[string]*Renderer{
		"Go Regular": def,
		"Face7x13":   NewRendererWithFace(basicfont.Face7x13),
	}

	for name, r := range renderers {
		for _, text := range []string{"Yuki", "Ren", "Keiji", "MSG"} {
			t.Run(name+"/"+text, func(t *testing.T) {
				img := newCanvas()
				r.DrawCentered(img, text, image.Pt(100, 100), white)

				ink := inkBounds(img)
				if ink.Empty() {
					t.Fatal("nothing was drawn")
				}
				cx := (ink.Min.X + ink.Max.X) / 2
				cy := (ink.Min.Y + ink.Max.Y) / 2
				if abs(cx-100) > 3 || abs(cy-100) > 3 {
					t.Errorf("ink %v centered at (%d,%d), want near (100,100)", ink, cx, cy)
				}
				if got := img.RGBAAt(0, 0); got != bg {
					t.Errorf("corner = %v, want %v", got, bg)
				}
			})
		}
	}
}

func TestDrawCenteredEmpty(t *testing.T) {
	img := newCanvas()
	NewRendererWithFace(basicfont.Face7x13).DrawCentered(img, "", image.Pt(100, 100), white)

	if ink := inkBounds(img); !ink.Empty() {
		t.Errorf("empty label drew %v", ink)
	}
}

func TestGetFace(t *testing.T) {
	fm, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}

	small, err := fm.GetFace(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer small.Close()
	large, err := fm.GetFace(40, 72)
	if err != nil {
		t.Fatal(err)
	}
	defer large.Close()

	if s, l := small.Metrics().Height, large.Metrics().Height; s >= l {
		t.Errorf("10pt height %v should be below 40pt height %v", s, l)
	}
}
