package actor

import "fmt"

// Orientation is the direction an actor faces and moves in.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right

	orientationCount
)

// Orientations lists every orientation in declaration order.
func Orientations() []Orientation {
	return []Orientation{Up, Down, Left, Right}
}

// Delta returns the unit step for o in screen coordinates (y grows downwards).
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether o is one of the four declared orientations.
func (o Orientation) Valid() bool {
	return o >= Up && o < orientationCount
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	parsed, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOrientation parses the lower-case name of an orientation.
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range Orientations() {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}
