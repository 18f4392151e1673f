package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/pacman/internal/infrastructure/config"
	"github.com/younwookim/pacman/internal/infrastructure/logging"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pacman",
		Short: "Pac-Man menu and playground",
		Long: `Opens a window with the title menu. "New game" enters the playground,
where the arrow keys steer Pac-Man and Escape returns to the menu.
"Exit" or closing the window from the menu quits.`,
		SilenceUsage: true,
		RunE:         runGame,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a configuration YAML file")
	pf.Duration("tick-interval", 0, "Time between ticks (e.g. 30ms)")
	pf.Bool("debug", false, "Treat invalid screen transitions as fatal")
	pf.Bool("reset-on-start", false, "Reset the playground each time a game starts")
	pf.String("assets", "", "Directory to load images from instead of the bundled assets")
	pf.String("font", "", "Menu font file, relative to the asset root")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text, json, logfmt")

	root.Flags().String("record", "", "Record input to a replay file")

	root.AddCommand(newRunCmd(), newReplayCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the game window",
		Args:  cobra.NoArgs,
		RunE:  runGame,
	}
	cmd.Flags().String("record", "", "Record input to a replay file")
	return cmd
}

// loadConfig layers configuration for cmd and builds the logger it asks for.
func loadConfig(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	cfg, source, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.Setup("pacman", cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	logger.Info("configuration loaded",
		"source", source,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"tick", cfg.Loop.TickInterval,
		"debug", cfg.Loop.Debug,
	)
	return cfg, logger, nil
}
