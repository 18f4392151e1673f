// Package actor models the sprites that move on the playfield: Pac-Man and
// the ghosts.
//
// Actors are dead-reckoning only. Advance moves by speed along the current
// orientation with no bounds, wall or collision checks; positions may go
// negative or leave the visible area.
package actor

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/render"
)

var errMissingSprite = errors.New("sprite set has no image for orientation")

// Position is a pixel coordinate.
type Position struct {
	X, Y int
}

// SpriteSet holds one image per orientation. It is loaded once per kind and
// shared by reference between every actor of that kind.
type SpriteSet [orientationCount]*ebiten.Image

// For returns the image bound to o.
func (s *SpriteSet) For(o Orientation) *ebiten.Image {
	if !o.Valid() {
		return nil
	}
	return s[o]
}

// Complete reports an error naming the first orientation without an image.
func (s *SpriteSet) Complete(kind Kind) error {
	if s == nil {
		return fault.ResourceLoad(kind.String(), errMissingSprite)
	}
	for _, o := range Orientations() {
		if s[o] == nil {
			return fault.ResourceLoad(kind.String()+"/"+o.String(), errMissingSprite)
		}
	}
	return nil
}

// Actor is a positioned, oriented, drawable game entity.
type Actor struct {
	kind        Kind
	position    Position
	orientation Orientation
	speed       uint
	sprites     *SpriteSet
}

// New creates an actor. sprites must hold an image for every orientation;
// an incomplete set is a resource load failure.
func New(kind Kind, speed uint, orientation Orientation, start Position, sprites *SpriteSet) (*Actor, error) {
	if err := sprites.Complete(kind); err != nil {
		return nil, err
	}
	return &Actor{
		kind:        kind,
		position:    start,
		orientation: orientation,
		speed:       speed,
		sprites:     sprites,
	}, nil
}

// Advance moves the actor by speed pixels along its orientation.
func (a *Actor) Advance() {
	dx, dy := a.orientation.Delta()
	step := int(a.speed)
	a.position.X += dx * step
	a.position.Y += dy * step
}

// SetOrientation replaces the orientation unconditionally.
func (a *Actor) SetOrientation(o Orientation) {
	a.orientation = o
}

// SetSpeed replaces the speed unconditionally.
func (a *Actor) SetSpeed(speed uint) {
	a.speed = speed
}

// SetPosition moves the actor to p.
func (a *Actor) SetPosition(p Position) {
	a.position = p
}

// Kind returns the actor kind.
func (a *Actor) Kind() Kind { return a.kind }

// Position returns the current position.
func (a *Actor) Position() Position { return a.position }

// Orientation returns the current orientation.
func (a *Actor) Orientation() Orientation { return a.orientation }

// Speed returns the current speed in pixels per tick.
func (a *Actor) Speed() uint { return a.speed }

// Sprite returns the image selected by the current orientation.
func (a *Actor) Sprite() *ebiten.Image {
	return a.sprites.For(a.orientation)
}

// Render draws the actor at its position using the image bound to its
// current orientation, sized by its kind.
func (a *Actor) Render(s render.Surface) {
	extent := float64(a.kind.Extent())
	s.DrawSprite(a.Sprite(), float64(a.position.X), float64(a.position.Y), extent, extent)
}
