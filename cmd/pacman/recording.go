package main

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/pacman/internal/application/replay"
)

// saveRecording saves the recording to filename, or to a generated name
// when filename is empty.
func saveRecording(r *replay.Recorder, filename string, logger *log.Logger) {
	if filename == "" {
		filename = r.DefaultFilename()
	}

	if err := r.Save(filename); err != nil {
		logger.Error("failed to save recording", "file", filename, "err", err)
		return
	}
	logger.Info("recording saved", "file", filename, "frames", r.FrameCount())
}
