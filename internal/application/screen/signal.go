package screen

// Signal is the outcome of a screen's input handling.
type Signal int

const (
	NoOp Signal = iota
	RequestQuit
	RequestStartGame
	RequestOpenMenu
)

// String returns the string representation of the signal
func (s Signal) String() string {
	switch s {
	case NoOp:
		return "NoOp"
	case RequestQuit:
		return "RequestQuit"
	case RequestStartGame:
		return "RequestStartGame"
	case RequestOpenMenu:
		return "RequestOpenMenu"
	default:
		return "Unknown"
	}
}
