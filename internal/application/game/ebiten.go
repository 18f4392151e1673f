package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pacman/internal/infrastructure/render"
)

// Window describes the presentation the controller runs in.
type Window struct {
	Title        string
	Width        int
	Height       int
	VSync        bool
	TickInterval time.Duration
}

// Setup applies w to the ebiten window. It must be called before Run.
func (c *Controller) Setup(w Window) {
	c.window = w
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetVsyncEnabled(w.VSync)
	// Window close becomes an input event instead of ending the game.
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tpsFor(w.TickInterval))
}

// Run blocks until quit or a fatal error.
func (c *Controller) Run() error {
	return ebiten.RunGame(&ebitenGame{c: c, width: c.window.Width, height: c.window.Height})
}

// tpsFor converts a tick interval to ebiten ticks per second.
func tpsFor(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	tps := int(math.Round(float64(time.Second) / float64(interval)))
	if tps < 1 {
		return 1
	}
	return tps
}

// ebitenGame implements ebiten.Game on top of a Controller.
type ebitenGame struct {
	c             *Controller
	width, height int
}

// Update implements ebiten.Game.
func (g *ebitenGame) Update() error {
	if err := g.c.Tick(); err != nil {
		return err
	}
	if !g.c.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.c.Render(render.NewImageSurface(screen))
}

// Layout implements ebiten.Game.
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width <= 0 || g.height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}
