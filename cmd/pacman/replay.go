package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/pacman/internal/application/replay"
	"github.com/younwookim/pacman/internal/infrastructure/logging"
	"github.com/younwookim/pacman/internal/infrastructure/render"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Play a recording back without a window",
		Long: `Feeds the recorded input to the game one tick at a time and reports
where everything ended up. Nothing is drawn.`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}
	cmd.Flags().Bool("realtime", false, "Pace ticks at the recorded tick interval")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		logging.LogError(logger, "cannot load replay", err)
		return err
	}
	replayer := replay.NewReplayer(*data)

	w, err := wire(cfg, replayer, logger)
	if err != nil {
		logging.LogError(logger, "startup failed", err)
		return err
	}

	realtime, err := cmd.Flags().GetBool("realtime")
	if err != nil {
		return err
	}
	interval := data.TickInterval
	if !realtime {
		interval = 0
	}

	surface := render.Discard{Width: cfg.Window.Width, Height: cfg.Window.Height}
	err = w.controller.RunHeadless(cmd.Context(), interval, surface, replayer.TotalFrames())
	if err != nil {
		logging.LogError(logger, "replay failed", err)
		return err
	}

	logger.Info("replay finished",
		"session", replayer.Session(),
		"frames", replayer.CurrentFrame(),
		"screen", w.controller.Active(),
		"running", w.controller.Running(),
	)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "screen: %s\n", w.controller.Active())
	fmt.Fprintf(out, "running: %t\n", w.controller.Running())
	fmt.Fprintf(out, "menu cursor: %d (%s)\n", w.menu.Cursor(), w.menu.Selected().Label())
	p := w.playground.Player()
	fmt.Fprintf(out, "%s: (%d,%d) %s\n", p.Kind(), p.Position().X, p.Position().Y, p.Orientation())
	for _, g := range w.playground.Ghosts() {
		fmt.Fprintf(out, "%s: (%d,%d) %s\n", g.Kind(), g.Position().X, g.Position().Y, g.Orientation())
	}
	return nil
}
