// pacman is a small Pac-Man playground: a title menu and a board where the
// player steers Pac-Man among four ghosts.
//
// Usage:
//
//	pacman                 - Open the game window
//	pacman run             - Same as above
//	pacman replay <file>   - Play a recording back without a window
//
// Global flags:
//
//	--config <path>        - Configuration file (default: ~/.pacman/pacman.yaml, ./configs/pacman.yaml)
//	--tick-interval <dur>  - Time between ticks (default: 30ms)
//	--debug                - Make invalid screen transitions fatal
//	--reset-on-start       - Reset the board every time a game starts
//	--assets <dir>         - Load images from a directory instead of the bundled ones
//	--record <file>        - Record input to a replay file
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
