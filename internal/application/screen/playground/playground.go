// Package playground provides the screen where the player steers Pac-Man
// among the ghosts.
package playground

import (
	"github.com/younwookim/pacman/internal/application/backdrop"
	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/application/screen"
	"github.com/younwookim/pacman/internal/domain/actor"
	"github.com/younwookim/pacman/internal/infrastructure/render"
)

// steering maps arrow keys to the orientation they select.
var steering = map[input.Key]actor.Orientation{
	input.KeyUp:    actor.Up,
	input.KeyDown:  actor.Down,
	input.KeyLeft:  actor.Left,
	input.KeyRight: actor.Right,
}

// Playground owns the player character and the ghosts. The cast is created
// once and never grows or shrinks.
type Playground struct {
	background *backdrop.Background
	layout     backdrop.Layout
	player     *actor.Actor
	ghosts     []*actor.Actor
}

// New casts layout using lookup.
func New(bg *backdrop.Background, layout backdrop.Layout, lookup backdrop.SpriteLookup) (*Playground, error) {
	player, ghosts, err := layout.Cast(lookup)
	if err != nil {
		return nil, err
	}

	// Keep a private copy so Reset is unaffected by later edits to layout.
	spawns := make([]backdrop.Spawn, len(layout.Ghosts))
	copy(spawns, layout.Ghosts)
	layout.Ghosts = spawns

	return &Playground{
		background: bg,
		layout:     layout,
		player:     player,
		ghosts:     ghosts,
	}, nil
}

// Player returns the player character.
func (p *Playground) Player() *actor.Actor { return p.player }

// Ghosts returns the ghosts in paint order.
func (p *Playground) Ghosts() []*actor.Actor { return p.ghosts }

// HandleInput implements screen.Screen. Arrow keys only turn the player;
// ghosts ignore input.
func (p *Playground) HandleInput(ev input.Event) screen.Signal {
	if ev.IsQuit() {
		return screen.RequestOpenMenu
	}
	if ev.Kind != input.EventKeyPressed {
		return screen.NoOp
	}
	if o, ok := steering[ev.Key]; ok {
		p.player.SetOrientation(o)
	}
	return screen.NoOp
}

// Advance implements screen.Screen.
func (p *Playground) Advance() {
	p.player.Advance()
	for _, g := range p.ghosts {
		g.Advance()
	}
}

// Draw implements screen.Screen. Paint order is background, player, ghosts.
func (p *Playground) Draw(s render.Surface) {
	if p.background != nil {
		p.background.Draw(s)
	}
	p.player.Render(s)
	for _, g := range p.ghosts {
		g.Render(s)
	}
}

// Reset puts every actor back at its spawn.
func (p *Playground) Reset() {
	p.layout.Player.Apply(p.player)
	for i, g := range p.ghosts {
		p.layout.Ghosts[i].Apply(g)
	}
}
