// Package input turns the windowing layer's keyboard state into the small,
// closed set of logical events the screens understand.
package input

import "fmt"

// EventKind distinguishes window events from key presses.
type EventKind int

const (
	EventKeyPressed EventKind = iota
	EventClosed
)

func (k EventKind) String() string {
	switch k {
	case EventKeyPressed:
		return "key"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EventKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "key":
		*k = EventKeyPressed
	case "closed":
		*k = EventClosed
	default:
		return fmt.Errorf("unknown event kind %q", b)
	}
	return nil
}

// Key is a logical key. Physical keys outside the set map to KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

var keyNames = map[Key]string{
	KeyOther:  "other",
	KeyEscape: "escape",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEnter:  "enter",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(b []byte) error {
	for key, name := range keyNames {
		if name == string(b) {
			*k = key
			return nil
		}
	}
	return fmt.Errorf("unknown key %q", b)
}

// Event is one logical input event.
type Event struct {
	Kind EventKind `json:"kind"`
	Key  Key       `json:"key,omitempty"`
}

// Closed returns the window-close event.
func Closed() Event {
	return Event{Kind: EventClosed}
}

// Pressed returns a key-press event for k.
func Pressed(k Key) Event {
	return Event{Kind: EventKeyPressed, Key: k}
}

// IsKey reports whether e is a press of k.
func (e Event) IsKey(k Key) bool {
	return e.Kind == EventKeyPressed && e.Key == k
}

// IsQuit reports whether e is a window close or an Escape press.
func (e Event) IsQuit() bool {
	return e.Kind == EventClosed || e.IsKey(KeyEscape)
}

func (e Event) String() string {
	if e.Kind == EventClosed {
		return "closed"
	}
	return "key:" + e.Key.String()
}

// Source yields the input events that arrived since the previous poll.
// Poll never blocks; it returns an empty slice when nothing is pending.
type Source interface {
	Poll() []Event
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []Event

// Poll implements Source.
func (f SourceFunc) Poll() []Event { return f() }
