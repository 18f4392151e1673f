package screen

// ID identifies a screen and doubles as its index in the controller's
// fixed screen table.
type ID int

const (
	Menu ID = iota
	Playground

	// Count is the number of screens.
	Count
)

// String returns the string representation of the screen
func (id ID) String() string {
	switch id {
	case Menu:
		return "Menu"
	case Playground:
		return "Playground"
	default:
		return "Unknown"
	}
}

// Accepts reports whether the screen identified by id may emit sig.
// NoOp is accepted everywhere.
func (id ID) Accepts(sig Signal) bool {
	switch id {
	case Menu:
		return sig == NoOp || sig == RequestQuit || sig == RequestStartGame
	case Playground:
		return sig == NoOp || sig == RequestOpenMenu
	default:
		return false
	}
}
