// Package menu provides the title menu screen.
package menu

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/application/screen"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/render"
)

// Default entry colors.
var (
	DefaultHighlight color.Color = color.RGBA{255, 255, 0, 255}
	DefaultBase      color.Color = color.White
)

// Item describes one entry before layout.
type Item struct {
	Label  string
	Action screen.Signal
}

// DefaultItems returns the stock title menu.
func DefaultItems() []Item {
	return []Item{
		{Label: "New game", Action: screen.RequestStartGame},
		{Label: "High score", Action: screen.NoOp},
		{Label: "Exit", Action: screen.RequestQuit},
	}
}

// Entry is a laid-out menu line.
type Entry struct {
	label    string
	y        int
	selected bool
	action   screen.Signal
}

func (e Entry) Label() string         { return e.label }
func (e Entry) Y() int                { return e.y }
func (e Entry) Selected() bool        { return e.selected }
func (e Entry) Action() screen.Signal { return e.action }

// Menu is a vertical list of entries with a single cursor.
type Menu struct {
	face      text.Face
	entries   []Entry
	cursor    int
	highlight color.Color
	base      color.Color
}

// Option configures a Menu.
type Option func(*Menu)

// WithColors sets the selected and unselected entry colors.
func WithColors(highlight, base color.Color) Option {
	return func(m *Menu) {
		if highlight != nil {
			m.highlight = highlight
		}
		if base != nil {
			m.base = base
		}
	}
}

// New lays out items top to bottom using the line height of face.
// The first entry starts selected.
func New(face text.Face, items []Item, opts ...Option) (*Menu, error) {
	if face == nil {
		return nil, fault.ConfigInvalid("menu.font", "no font face")
	}
	if len(items) == 0 {
		return nil, fault.ConfigInvalid("menu.items", "at least one entry is required")
	}

	m := &Menu{
		face:      face,
		entries:   make([]Entry, len(items)),
		highlight: DefaultHighlight,
		base:      DefaultBase,
	}
	for _, opt := range opts {
		opt(m)
	}

	lineHeight := lineHeightOf(face)
	var offset float64
	for i, it := range items {
		m.entries[i] = Entry{
			label:  it.Label,
			y:      int(math.Floor(offset)),
			action: it.Action,
		}
		offset += lineHeight
	}
	m.entries[0].selected = true
	return m, nil
}

func lineHeightOf(face text.Face) float64 {
	mt := face.Metrics()
	return mt.HAscent + mt.HDescent + mt.HLineGap
}

// Cursor returns the index of the selected entry.
func (m *Menu) Cursor() int { return m.cursor }

// Selected returns the selected entry.
func (m *Menu) Selected() Entry { return m.entries[m.cursor] }

// Entries returns a copy of the entries in display order.
func (m *Menu) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HandleInput implements screen.Screen.
func (m *Menu) HandleInput(ev input.Event) screen.Signal {
	if ev.IsQuit() {
		return screen.RequestQuit
	}
	switch {
	case ev.IsKey(input.KeyUp):
		m.moveTo(m.cursor - 1)
	case ev.IsKey(input.KeyDown):
		m.moveTo(m.cursor + 1)
	case ev.IsKey(input.KeyEnter):
		return m.entries[m.cursor].action
	}
	return screen.NoOp
}

// moveTo saturates at both ends of the list.
func (m *Menu) moveTo(i int) {
	if i < 0 || i >= len(m.entries) || i == m.cursor {
		return
	}
	m.entries[m.cursor].selected = false
	m.entries[i].selected = true
	m.cursor = i
}

// Advance implements screen.Screen. The menu has no timed behavior.
func (m *Menu) Advance() {}

// Draw implements screen.Screen. Entries are centered horizontally.
func (m *Menu) Draw(s render.Surface) {
	width, _ := s.Size()
	lineHeight := lineHeightOf(m.face)
	for _, e := range m.entries {
		w, _ := text.Measure(e.label, m.face, lineHeight)
		c := m.base
		if e.selected {
			c = m.highlight
		}
		s.DrawText(e.label, m.face, (float64(width)-w)/2, float64(e.y), c)
	}
}
