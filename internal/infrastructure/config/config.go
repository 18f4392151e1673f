// Package config loads the game configuration.
package config

import (
	_ "embed"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/pacman/internal/domain/actor"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/assets"
)

//go:embed defaults/pacman.yaml
var defaultYAML []byte

// Menu item actions.
const (
	ActionStartGame = "start_game"
	ActionQuit      = "quit"
	ActionNone      = "none"
)

// Config is the complete game configuration.
type Config struct {
	Window     Window                        `yaml:"window" koanf:"window"`
	Loop       Loop                          `yaml:"loop" koanf:"loop"`
	Assets     Assets                        `yaml:"assets" koanf:"assets"`
	Menu       Menu                          `yaml:"menu" koanf:"menu"`
	Playground Playground                    `yaml:"playground" koanf:"playground"`
	Sprites    map[string]assets.SpritePaths `yaml:"sprites" koanf:"sprites"`
	Log        Log                           `yaml:"log" koanf:"log"`
	Replay     Replay                        `yaml:"replay" koanf:"replay"`
}

// Window holds presentation settings.
type Window struct {
	Title  string `yaml:"title" koanf:"title"`
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
	VSync  bool   `yaml:"vsync" koanf:"vsync"`
}

// Loop holds control loop settings.
type Loop struct {
	TickInterval time.Duration `yaml:"tick_interval" koanf:"tick_interval"`
	Debug        bool          `yaml:"debug" koanf:"debug"`
}

// Assets locates sprites and the font.
type Assets struct {
	Root string `yaml:"root" koanf:"root"`
	Font string `yaml:"font" koanf:"font"`
}

// Menu holds the title menu settings.
type Menu struct {
	FontSize  float64    `yaml:"font_size" koanf:"font_size"`
	Highlight string     `yaml:"highlight" koanf:"highlight"`
	Base      string     `yaml:"base" koanf:"base"`
	Items     []MenuItem `yaml:"items" koanf:"items"`
}

// MenuItem is one menu line.
type MenuItem struct {
	Label  string `yaml:"label" koanf:"label"`
	Action string `yaml:"action" koanf:"action"`
}

// Playground holds the demo scene.
type Playground struct {
	ResetOnStart bool       `yaml:"reset_on_start" koanf:"reset_on_start"`
	Background   Background `yaml:"background" koanf:"background"`
	Player       Spawn      `yaml:"player" koanf:"player"`
	Ghosts       []Spawn    `yaml:"ghosts" koanf:"ghosts"`
}

// Background is the playground's backdrop image and its drawn extents.
type Background struct {
	Image  string `yaml:"image" koanf:"image"`
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
}

// Spawn is the starting state of one actor.
type Spawn struct {
	Kind        string `yaml:"kind" koanf:"kind"`
	X           int    `yaml:"x" koanf:"x"`
	Y           int    `yaml:"y" koanf:"y"`
	Orientation string `yaml:"orientation" koanf:"orientation"`
	Speed       uint   `yaml:"speed" koanf:"speed"`
}

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

// Replay holds input recording settings.
type Replay struct {
	// Record is the file recorded input is saved to. Empty disables recording.
	Record string `yaml:"record" koanf:"record"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded defaults: " + err.Error())
	}
	return &cfg
}

// Validate checks every field the game relies on.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fault.ConfigInvalid("window", "size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Loop.TickInterval <= 0 {
		return fault.ConfigInvalid("loop.tick_interval", "must be positive, got %s", c.Loop.TickInterval)
	}

	if c.Menu.FontSize <= 0 {
		return fault.ConfigInvalid("menu.font_size", "must be positive, got %g", c.Menu.FontSize)
	}
	if _, err := ParseColor(c.Menu.Highlight); err != nil {
		return fault.ConfigInvalid("menu.highlight", "%v", err)
	}
	if _, err := ParseColor(c.Menu.Base); err != nil {
		return fault.ConfigInvalid("menu.base", "%v", err)
	}
	if len(c.Menu.Items) == 0 {
		return fault.ConfigInvalid("menu.items", "at least one entry is required")
	}
	for i, it := range c.Menu.Items {
		switch it.Action {
		case ActionStartGame, ActionQuit, ActionNone:
		default:
			return fault.ConfigInvalid("menu.items", "entry %d: unknown action %q", i, it.Action)
		}
	}

	bg := c.Playground.Background
	if bg.Image == "" {
		return fault.ConfigInvalid("playground.background.image", "must be set")
	}
	if bg.Width <= 0 || bg.Height <= 0 {
		return fault.ConfigInvalid("playground.background", "size must be positive, got %dx%d", bg.Width, bg.Height)
	}

	kind, err := c.Playground.Player.validate("playground.player")
	if err != nil {
		return err
	}
	if kind != actor.PlayerCharacter {
		return fault.ConfigInvalid("playground.player.kind", "want %s, got %s", actor.PlayerCharacter, kind)
	}
	if err := c.checkSprites(kind); err != nil {
		return err
	}
	for _, g := range c.Playground.Ghosts {
		kind, err := g.validate("playground.ghosts")
		if err != nil {
			return err
		}
		if !kind.IsGhost() {
			return fault.ConfigInvalid("playground.ghosts", "%s is not a ghost", kind)
		}
		if err := c.checkSprites(kind); err != nil {
			return err
		}
	}
	return nil
}

func (s Spawn) validate(field string) (actor.Kind, error) {
	kind, err := actor.ParseKind(s.Kind)
	if err != nil {
		return 0, fault.ConfigInvalid(field+".kind", "%v", err)
	}
	if _, err := actor.ParseOrientation(s.Orientation); err != nil {
		return 0, fault.ConfigInvalid(field+".orientation", "%v", err)
	}
	return kind, nil
}

func (c *Config) checkSprites(kind actor.Kind) error {
	paths, ok := c.Sprites[kind.String()]
	if !ok {
		return fault.ConfigInvalid("sprites."+kind.String(), "missing")
	}
	for _, o := range actor.Orientations() {
		if paths.For(o) == "" {
			return fault.ConfigInvalid("sprites."+kind.String()+"."+o.String(), "missing")
		}
	}
	return nil
}

// Manifest returns the asset manifest the configuration describes.
// Sprite keys that do not name a kind are skipped; Validate reports them
// only when a spawn needs them.
func (c *Config) Manifest() assets.Manifest {
	m := assets.Manifest{
		Sprites:    make(map[actor.Kind]assets.SpritePaths, len(c.Sprites)),
		Background: c.Playground.Background.Image,
		Font:       c.Assets.Font,
	}
	for name, paths := range c.Sprites {
		kind, err := actor.ParseKind(name)
		if err != nil {
			continue
		}
		m.Sprites[kind] = paths
	}
	return m
}

// ParseColor parses a hex color such as "#ffff00".
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	return c, nil
}
