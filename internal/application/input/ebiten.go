package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads ebiten's per-tick keyboard and window state.
//
// The window must have ebiten.SetWindowClosingHandled(true) set for close
// requests to be reported as events instead of terminating the game.
type EbitenSource struct {
	keys []ebiten.Key
}

// NewEbitenSource creates an ebiten-backed source.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{keys: make([]ebiten.Key, 0, 8)}
}

// Poll implements Source.
func (s *EbitenSource) Poll() []Event {
	var events []Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, Closed())
	}
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		events = append(events, Pressed(MapKey(k)))
	}
	return events
}

// MapKey maps a physical ebiten key to its logical key.
func MapKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyEscape:
		return KeyEscape
	case ebiten.KeyArrowUp:
		return KeyUp
	case ebiten.KeyArrowDown:
		return KeyDown
	case ebiten.KeyArrowLeft:
		return KeyLeft
	case ebiten.KeyArrowRight:
		return KeyRight
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return KeyEnter
	default:
		return KeyOther
	}
}
