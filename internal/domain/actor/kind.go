package actor

import "fmt"

// Kind identifies what an actor is. It is fixed at construction.
type Kind int

const (
	PlayerCharacter Kind = iota
	GhostRed
	GhostBlue
	GhostYellow
	GhostEdible

	kindCount
)

// Extents in pixels, by kind.
const (
	PlayerExtent = 90
	GhostExtent  = 80
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{PlayerCharacter, GhostRed, GhostBlue, GhostYellow, GhostEdible}
}

// IsGhost reports whether k is one of the ghost kinds.
func (k Kind) IsGhost() bool {
	return k >= GhostRed && k < kindCount
}

// Extent returns the side of the square an actor of kind k is drawn in.
func (k Kind) Extent() int {
	if k == PlayerCharacter {
		return PlayerExtent
	}
	return GhostExtent
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k >= PlayerCharacter && k < kindCount
}

func (k Kind) String() string {
	switch k {
	case PlayerCharacter:
		return "player"
	case GhostRed:
		return "ghost_red"
	case GhostBlue:
		return "ghost_blue"
	case GhostYellow:
		return "ghost_yellow"
	case GhostEdible:
		return "ghost_edible"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind parses the snake_case name of a kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown actor kind %q", s)
}
