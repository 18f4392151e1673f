// Package screen defines the contract shared by the game's screens.
//
// A screen owns its input handling, its tick simulation and its rendering.
// Screens never switch screens themselves: input handling returns a Signal
// and only the game controller acts on it.
package screen

import (
	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/infrastructure/render"
)

// Screen is one mutually exclusive mode of the game.
type Screen interface {
	// HandleInput reacts to one input event and reports the transition the
	// screen wants the controller to perform.
	HandleInput(ev input.Event) Signal

	// Advance runs one tick of the screen's simulation.
	Advance()

	// Draw renders the screen onto s.
	Draw(s render.Surface)
}
