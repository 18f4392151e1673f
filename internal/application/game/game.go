// Package game provides the controller that owns the screens and drives
// transitions between them.
package game

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/application/screen"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/logging"
	"github.com/younwookim/pacman/internal/infrastructure/render"
)

// ClearColor is painted under the active screen every frame.
var ClearColor color.Color = color.Black

// Resetter is implemented by screens that can return to their initial state.
type Resetter interface {
	Reset()
}

// Options tune the controller.
type Options struct {
	// Debug makes an invalid transition fatal instead of ignored.
	Debug bool
	// ResetOnStart resets the playground every time a game is started.
	ResetOnStart bool
	Logger       *log.Logger
}

// Controller owns the screens, the active screen and the running flag.
// It is the only thing that changes screens.
type Controller struct {
	screens [screen.Count]screen.Screen
	active  screen.ID
	running bool
	source  input.Source
	opts    Options
	logger  *log.Logger
	ticks   int
	window  Window
}

// New creates a controller starting on the menu.
func New(menu, playground screen.Screen, src input.Source, opts Options) (*Controller, error) {
	if menu == nil || playground == nil {
		return nil, fault.ConfigInvalid("screens", "menu and playground are required")
	}
	if src == nil {
		return nil, fault.ConfigInvalid("input", "no input source")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Controller{
		active:  screen.Menu,
		running: true,
		source:  src,
		opts:    opts,
		logger:  logger,
	}
	c.screens[screen.Menu] = menu
	c.screens[screen.Playground] = playground
	return c, nil
}

// Active returns the active screen.
func (c *Controller) Active() screen.ID { return c.active }

// Running reports whether the loop should keep going. Once false it stays
// false.
func (c *Controller) Running() bool { return c.running }

// Ticks returns the number of completed ticks.
func (c *Controller) Ticks() int { return c.ticks }

// Screen returns the screen registered under id.
func (c *Controller) Screen(id screen.ID) screen.Screen {
	if id < 0 || id >= screen.Count {
		return nil
	}
	return c.screens[id]
}

// Tick runs one iteration: every pending event is dispatched to the active
// screen and its signal applied at once, then the active screen advances.
// A quit request stops dispatch and skips the advance.
func (c *Controller) Tick() error {
	if !c.running {
		return nil
	}

	for _, ev := range c.source.Poll() {
		sig := c.screens[c.active].HandleInput(ev)
		if err := c.apply(sig); err != nil {
			return err
		}
		if !c.running {
			return nil
		}
	}

	c.screens[c.active].Advance()
	c.ticks++
	return nil
}

func (c *Controller) apply(sig screen.Signal) error {
	if sig == screen.NoOp {
		return nil
	}
	if !c.active.Accepts(sig) {
		err := fault.InvalidTransition(c.active.String(), sig.String())
		if c.opts.Debug {
			c.running = false
			return err
		}
		c.logger.Warn("ignoring invalid transition", "screen", c.active, "signal", sig)
		return nil
	}

	switch sig {
	case screen.RequestQuit:
		c.running = false
		c.logger.Debug("quit requested", "screen", c.active, "ticks", c.ticks)
	case screen.RequestStartGame:
		if c.opts.ResetOnStart {
			if r, ok := c.screens[screen.Playground].(Resetter); ok {
				r.Reset()
			}
		}
		c.switchTo(screen.Playground)
	case screen.RequestOpenMenu:
		c.switchTo(screen.Menu)
	}
	return nil
}

func (c *Controller) switchTo(id screen.ID) {
	c.logger.Debug("switching screen", "from", c.active, "to", id)
	c.active = id
}

// Render draws only the active screen. Nothing is drawn after quit.
func (c *Controller) Render(s render.Surface) {
	if !c.running {
		return
	}
	s.Fill(ClearColor)
	c.screens[c.active].Draw(s)
}
