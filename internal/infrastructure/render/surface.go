// Package render provides the drawing destinations the screens paint on.
//
// Screens never talk to ebiten's screen image directly; they draw through a
// Surface so the same code can target the window, an offscreen image, or a
// recording fake in tests.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Surface is a drawing destination.
type Surface interface {
	// Size returns the destination extents in pixels.
	Size() (width, height int)

	// Fill paints the whole destination with c.
	Fill(c color.Color)

	// DrawSprite draws img stretched to width x height with its top-left
	// corner at (x, y).
	DrawSprite(img *ebiten.Image, x, y, width, height float64)

	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, face text.Face, x, y float64, c color.Color)
}

// ImageSurface draws onto an ebiten image.
type ImageSurface struct {
	dst *ebiten.Image
}

// NewImageSurface wraps dst.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst}
}

// Size implements Surface.
func (s *ImageSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Fill implements Surface.
func (s *ImageSurface) Fill(c color.Color) {
	s.dst.Fill(c)
}

// DrawSprite implements Surface.
func (s *ImageSurface) DrawSprite(img *ebiten.Image, x, y, width, height float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(img, op)
}

// DrawText implements Surface.
func (s *ImageSurface) DrawText(str string, face text.Face, x, y float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, face, op)
}

// Discard is a Surface that draws nothing. Headless runs use it.
type Discard struct {
	Width, Height int
}

// Size implements Surface.
func (d Discard) Size() (int, int) { return d.Width, d.Height }

// Fill implements Surface.
func (Discard) Fill(color.Color) {}

// DrawSprite implements Surface.
func (Discard) DrawSprite(*ebiten.Image, float64, float64, float64, float64) {}

// DrawText implements Surface.
func (Discard) DrawText(string, text.Face, float64, float64, color.Color) {}
