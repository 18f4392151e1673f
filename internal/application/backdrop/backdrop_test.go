package backdrop

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/pacman/internal/domain/actor"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/render/rendertest"
)

// fakeLookup hands out one set per kind and counts requests.
type fakeLookup struct {
	sets  map[actor.Kind]*actor.SpriteSet
	calls map[actor.Kind]int
	fail  actor.Kind
	err   error
}

func newFakeLookup() *fakeLookup {
	f := &fakeLookup{
		sets:  make(map[actor.Kind]*actor.SpriteSet),
		calls: make(map[actor.Kind]int),
		fail:  -1,
	}
	for _, k := range actor.Kinds() {
		var s actor.SpriteSet
		for _, o := range actor.Orientations() {
			s[o] = ebiten.NewImage(2, 2)
		}
		f.sets[k] = &s
	}
	return f
}

func (f *fakeLookup) Sprites(kind actor.Kind) (*actor.SpriteSet, error) {
	f.calls[kind]++
	if kind == f.fail {
		return nil, f.err
	}
	return f.sets[kind], nil
}

func TestDemoLayout(t *testing.T) {
	l := DemoLayout()

	require.NoError(t, l.Validate())
	assert.Equal(t, Spawn{actor.PlayerCharacter, actor.Position{X: 1230, Y: 705}, actor.Left, 8}, l.Player)
	require.Len(t, l.Ghosts, 4)

	kinds := make([]actor.Kind, 0, len(l.Ghosts))
	for _, g := range l.Ghosts {
		kinds = append(kinds, g.Kind)
	}
	assert.Equal(t, []actor.Kind{actor.GhostEdible, actor.GhostBlue, actor.GhostRed, actor.GhostYellow}, kinds)
	assert.Equal(t, actor.Position{X: 163, Y: 710}, l.Ghosts[2].Position)
	assert.Equal(t, actor.Right, l.Ghosts[2].Orientation)
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"ghost as player", func(l *Layout) { l.Player.Kind = actor.GhostRed }},
		{"player as ghost", func(l *Layout) { l.Ghosts[1].Kind = actor.PlayerCharacter }},
		{"bad player orientation", func(l *Layout) { l.Player.Orientation = actor.Orientation(9) }},
		{"bad ghost orientation", func(l *Layout) { l.Ghosts[0].Orientation = actor.Orientation(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DemoLayout()
			tt.mutate(&l)

			err := l.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, fault.ErrConfigInvalid)
		})
	}
}

func TestLayout_Cast(t *testing.T) {
	lookup := newFakeLookup()
	l := DemoLayout()

	player, ghosts, err := l.Cast(lookup)
	require.NoError(t, err)

	assert.Equal(t, actor.PlayerCharacter, player.Kind())
	assert.Equal(t, actor.Position{X: 1230, Y: 705}, player.Position())
	assert.Equal(t, actor.Left, player.Orientation())
	assert.Equal(t, uint(8), player.Speed())
	assert.Same(t, lookup.sets[actor.PlayerCharacter][actor.Left], player.Sprite())

	require.Len(t, ghosts, 4)
	for i, g := range ghosts {
		assert.Equal(t, l.Ghosts[i].Kind, g.Kind())
		assert.Equal(t, l.Ghosts[i].Position, g.Position())
		assert.Equal(t, l.Ghosts[i].Orientation, g.Orientation())
	}
}

func TestLayout_CastSharesSetsAcrossSameKind(t *testing.T) {
	lookup := newFakeLookup()
	l := DemoLayout()
	l.Ghosts = append(l.Ghosts, Spawn{actor.GhostRed, actor.Position{X: 1, Y: 1}, actor.Right, 2})

	_, ghosts, err := l.Cast(lookup)
	require.NoError(t, err)

	assert.Same(t, ghosts[2].Sprite(), ghosts[4].Sprite())
	assert.Equal(t, 2, lookup.calls[actor.GhostRed])
}

func TestLayout_CastPropagatesLoadFailure(t *testing.T) {
	lookup := newFakeLookup()
	lookup.fail = actor.GhostYellow
	lookup.err = fault.ResourceLoad("images/ghost_yellow_up.png", errors.New("corrupt"))

	player, ghosts, err := DemoLayout().Cast(lookup)

	assert.Nil(t, player)
	assert.Nil(t, ghosts)
	assert.True(t, fault.IsResourceLoad(err))
}

func TestSpawn_Apply(t *testing.T) {
	lookup := newFakeLookup()
	spawn := DemoLayout().Player
	a, err := spawn.build(lookup)
	require.NoError(t, err)

	a.SetOrientation(actor.Up)
	a.SetSpeed(1)
	a.Advance()
	spawn.Apply(a)

	assert.Equal(t, spawn.Position, a.Position())
	assert.Equal(t, spawn.Orientation, a.Orientation())
	assert.Equal(t, spawn.Speed, a.Speed())
}

func TestBackground(t *testing.T) {
	img := ebiten.NewImage(8, 8)
	bg, err := NewBackground(img, DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	rec := rendertest.New(1800, 1600)
	bg.Draw(rec)

	sprites := rec.Sprites()
	require.Len(t, sprites, 1)
	assert.Same(t, img, sprites[0].Image)
	assert.Equal(t, rendertest.Op{Kind: rendertest.OpSprite, Image: img, W: 1450, H: 1600}, sprites[0])
}

func TestNewBackground_Errors(t *testing.T) {
	_, err := NewBackground(nil, 10, 10)
	assert.True(t, fault.IsResourceLoad(err))

	_, err = NewBackground(ebiten.NewImage(1, 1), 0, 10)
	assert.ErrorIs(t, err, fault.ErrConfigInvalid)
}
