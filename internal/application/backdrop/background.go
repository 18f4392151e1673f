// Package backdrop provides the playground's static dressing: the textured
// background and the cast the demo scene starts with.
package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/render"
)

// Default background extents.
const (
	DefaultWidth  = 1450
	DefaultHeight = 1600
)

// Background is a textured rectangle drawn at the origin.
type Background struct {
	image         *ebiten.Image
	width, height int
}

// NewBackground returns a background drawing img stretched to width x height.
func NewBackground(img *ebiten.Image, width, height int) (*Background, error) {
	if img == nil {
		return nil, fault.ResourceLoad("background", nil)
	}
	if width <= 0 || height <= 0 {
		return nil, fault.ConfigInvalid("playground.background", "extents must be positive, got %dx%d", width, height)
	}
	return &Background{image: img, width: width, height: height}, nil
}

// Size returns the drawn extents.
func (b *Background) Size() (int, int) { return b.width, b.height }

// Draw paints the background.
func (b *Background) Draw(s render.Surface) {
	s.DrawSprite(b.image, 0, 0, float64(b.width), float64(b.height))
}
