package main

import (
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/younwookim/pacman/internal/application/backdrop"
	"github.com/younwookim/pacman/internal/application/game"
	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/application/screen"
	"github.com/younwookim/pacman/internal/application/screen/menu"
	"github.com/younwookim/pacman/internal/application/screen/playground"
	"github.com/younwookim/pacman/internal/domain/actor"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/assets"
	"github.com/younwookim/pacman/internal/infrastructure/config"
)

// wired is everything built from one configuration.
type wired struct {
	controller *game.Controller
	menu       *menu.Menu
	playground *playground.Playground
	library    *assets.Library
}

// wire loads the assets and builds both screens and the controller.
func wire(cfg *config.Config, src input.Source, logger *log.Logger) (*wired, error) {
	fsys, err := assetFS(cfg.Assets.Root)
	if err != nil {
		return nil, err
	}
	lib, err := assets.Load(fsys, cfg.Manifest())
	if err != nil {
		return nil, err
	}
	logger.Debug("assets loaded", "root", cfg.Assets.Root, "images", lib.ImageCount())

	highlight, err := config.ParseColor(cfg.Menu.Highlight)
	if err != nil {
		return nil, fault.ConfigInvalid("menu.highlight", "%v", err)
	}
	base, err := config.ParseColor(cfg.Menu.Base)
	if err != nil {
		return nil, fault.ConfigInvalid("menu.base", "%v", err)
	}
	items, err := menuItems(cfg.Menu.Items)
	if err != nil {
		return nil, err
	}
	m, err := menu.New(lib.Face(cfg.Menu.FontSize), items, menu.WithColors(highlight, base))
	if err != nil {
		return nil, err
	}

	bgImage, err := lib.Background()
	if err != nil {
		return nil, err
	}
	bg, err := backdrop.NewBackground(bgImage, cfg.Playground.Background.Width, cfg.Playground.Background.Height)
	if err != nil {
		return nil, err
	}
	layout, err := layoutFrom(cfg.Playground)
	if err != nil {
		return nil, err
	}
	pg, err := playground.New(bg, layout, lib)
	if err != nil {
		return nil, err
	}

	c, err := game.New(m, pg, src, game.Options{
		Debug:        cfg.Loop.Debug,
		ResetOnStart: cfg.Playground.ResetOnStart,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}
	return &wired{controller: c, menu: m, playground: pg, library: lib}, nil
}

// assetFS returns the bundled assets, or root on disk when set.
func assetFS(root string) (fs.FS, error) {
	if root == "" {
		return fs.Sub(bundled, "assets")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fault.ResourceLoad(root, err)
	}
	if !info.IsDir() {
		return nil, fault.ConfigInvalid("assets.root", "%s is not a directory", root)
	}
	return os.DirFS(root), nil
}

func menuItems(items []config.MenuItem) ([]menu.Item, error) {
	out := make([]menu.Item, 0, len(items))
	for i, it := range items {
		var sig screen.Signal
		switch it.Action {
		case config.ActionStartGame:
			sig = screen.RequestStartGame
		case config.ActionQuit:
			sig = screen.RequestQuit
		case config.ActionNone:
			sig = screen.NoOp
		default:
			return nil, fault.ConfigInvalid("menu.items", "entry %d: unknown action %q", i, it.Action)
		}
		out = append(out, menu.Item{Label: it.Label, Action: sig})
	}
	return out, nil
}

func layoutFrom(p config.Playground) (backdrop.Layout, error) {
	player, err := spawnFrom(p.Player)
	if err != nil {
		return backdrop.Layout{}, err
	}
	ghosts := make([]backdrop.Spawn, 0, len(p.Ghosts))
	for _, g := range p.Ghosts {
		s, err := spawnFrom(g)
		if err != nil {
			return backdrop.Layout{}, err
		}
		ghosts = append(ghosts, s)
	}
	return backdrop.Layout{Player: player, Ghosts: ghosts}, nil
}

func spawnFrom(s config.Spawn) (backdrop.Spawn, error) {
	kind, err := actor.ParseKind(s.Kind)
	if err != nil {
		return backdrop.Spawn{}, fault.ConfigInvalid("playground.kind", "%v", err)
	}
	o, err := actor.ParseOrientation(s.Orientation)
	if err != nil {
		return backdrop.Spawn{}, fault.ConfigInvalid("playground.orientation", "%v", err)
	}
	return backdrop.Spawn{
		Kind:        kind,
		Position:    actor.Position{X: s.X, Y: s.Y},
		Orientation: o,
		Speed:       s.Speed,
	}, nil
}
