// Package rendertest provides a recording render.Surface for tests.
package rendertest

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFill OpKind = iota
	OpSprite
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	Image *ebiten.Image
	Text  string
	X, Y  float64
	W, H  float64
	Color color.Color
}

// Recorder records every call made on it, in order.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// New returns a recorder reporting the given size.
func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Fill(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c})
}

func (r *Recorder) DrawSprite(img *ebiten.Image, x, y, width, height float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSprite, Image: img, X: x, Y: y, W: width, H: height})
}

func (r *Recorder) DrawText(s string, _ text.Face, x, y float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, X: x, Y: y, Color: c})
}

// Sprites returns the recorded sprite draws.
func (r *Recorder) Sprites() []Op { return r.filter(OpSprite) }

// Texts returns the recorded text draws.
func (r *Recorder) Texts() []Op { return r.filter(OpText) }

// Reset drops everything recorded so far.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
