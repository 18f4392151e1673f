package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/pacman/internal/application/game"
	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/application/replay"
	"github.com/younwookim/pacman/internal/infrastructure/logging"
)

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var src input.Source = input.NewEbitenSource()
	var recorder *replay.Recorder
	if cfg.Replay.Record != "" {
		recorder = replay.NewRecorder(src, cfg.Loop.TickInterval)
		src = recorder
		logger.Info("recording enabled", "file", cfg.Replay.Record, "session", recorder.Session())
	}

	w, err := wire(cfg, src, logger)
	if err != nil {
		logging.LogError(logger, "startup failed", err)
		return err
	}

	w.controller.Setup(game.Window{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		VSync:        cfg.Window.VSync,
		TickInterval: cfg.Loop.TickInterval,
	})
	runErr := w.controller.Run()

	if recorder != nil {
		saveRecording(recorder, cfg.Replay.Record, logger)
	}
	if runErr != nil {
		logging.LogError(logger, "game terminated", runErr)
		return runErr
	}
	logger.Info("bye", "ticks", w.controller.Ticks())
	return nil
}
