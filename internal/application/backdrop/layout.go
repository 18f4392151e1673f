package backdrop

import (
	"github.com/younwookim/pacman/internal/domain/actor"
	"github.com/younwookim/pacman/internal/fault"
)

// DefaultSpeed is the demo cast speed in pixels per tick.
const DefaultSpeed = 8

// Spawn is where and how one actor starts.
type Spawn struct {
	Kind        actor.Kind
	Position    actor.Position
	Orientation actor.Orientation
	Speed       uint
}

// Layout is the starting cast of a playground.
type Layout struct {
	Player Spawn
	Ghosts []Spawn
}

// DemoLayout returns the stock demo scene.
func DemoLayout() Layout {
	return Layout{
		Player: Spawn{actor.PlayerCharacter, actor.Position{X: 1230, Y: 705}, actor.Left, DefaultSpeed},
		Ghosts: []Spawn{
			{actor.GhostEdible, actor.Position{X: 915, Y: 705}, actor.Up, DefaultSpeed},
			{actor.GhostBlue, actor.Position{X: 460, Y: 560}, actor.Down, DefaultSpeed},
			{actor.GhostRed, actor.Position{X: 163, Y: 710}, actor.Right, DefaultSpeed},
			{actor.GhostYellow, actor.Position{X: 460, Y: 860}, actor.Left, DefaultSpeed},
		},
	}
}

// Validate checks that the player spawn is the player and every other spawn
// is a ghost.
func (l Layout) Validate() error {
	if l.Player.Kind != actor.PlayerCharacter {
		return fault.ConfigInvalid("playground.player.kind", "want %s, got %s", actor.PlayerCharacter, l.Player.Kind)
	}
	if !l.Player.Orientation.Valid() {
		return fault.ConfigInvalid("playground.player.orientation", "invalid orientation %d", int(l.Player.Orientation))
	}
	for i, g := range l.Ghosts {
		if !g.Kind.IsGhost() {
			return fault.ConfigInvalid("playground.ghosts", "entry %d: %s is not a ghost", i, g.Kind)
		}
		if !g.Orientation.Valid() {
			return fault.ConfigInvalid("playground.ghosts", "entry %d: invalid orientation %d", i, int(g.Orientation))
		}
	}
	return nil
}

// SpriteLookup resolves the shared sprite set of a kind.
type SpriteLookup interface {
	Sprites(kind actor.Kind) (*actor.SpriteSet, error)
}

// Cast builds the actors of the layout. Actors of the same kind share one
// sprite set.
func (l Layout) Cast(lookup SpriteLookup) (*actor.Actor, []*actor.Actor, error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	player, err := l.Player.build(lookup)
	if err != nil {
		return nil, nil, err
	}

	ghosts := make([]*actor.Actor, 0, len(l.Ghosts))
	for _, g := range l.Ghosts {
		a, err := g.build(lookup)
		if err != nil {
			return nil, nil, err
		}
		ghosts = append(ghosts, a)
	}
	return player, ghosts, nil
}

func (s Spawn) build(lookup SpriteLookup) (*actor.Actor, error) {
	sprites, err := lookup.Sprites(s.Kind)
	if err != nil {
		return nil, err
	}
	return actor.New(s.Kind, s.Speed, s.Orientation, s.Position, sprites)
}

// Apply puts a back at the spawn.
func (s Spawn) Apply(a *actor.Actor) {
	a.SetPosition(s.Position)
	a.SetOrientation(s.Orientation)
	a.SetSpeed(s.Speed)
}
