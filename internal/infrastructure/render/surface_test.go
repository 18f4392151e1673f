package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestImageSurface_Size(t *testing.T) {
	s := NewImageSurface(ebiten.NewImage(180, 160))

	w, h := s.Size()
	assert.Equal(t, 180, w)
	assert.Equal(t, 160, h)
}

func TestImageSurface_NilInputsAreIgnored(t *testing.T) {
	s := NewImageSurface(ebiten.NewImage(10, 10))

	assert.NotPanics(t, func() {
		s.DrawSprite(nil, 0, 0, 10, 10)
		s.DrawText("Exit", nil, 0, 0, color.White)
	})
}

func TestDiscard(t *testing.T) {
	var s Surface = Discard{Width: 1800, Height: 1600}

	w, h := s.Size()
	assert.Equal(t, 1800, w)
	assert.Equal(t, 1600, h)
	assert.NotPanics(t, func() {
		s.Fill(color.Black)
		s.DrawSprite(ebiten.NewImage(1, 1), 0, 0, 1, 1)
		s.DrawText("New game", nil, 0, 0, color.White)
	})
}
