// Package replay records the logical input of a session and plays it back.
package replay

import (
	"time"

	"github.com/younwookim/pacman/internal/application/input"
)

// FormatVersion is written into every recording.
const FormatVersion = "1.0"

// FrameInput is what was polled during one tick.
type FrameInput struct {
	F      int           `json:"f"`
	Events []input.Event `json:"events,omitempty"` // poll order
}

// ReplayData is a whole recorded session.
type ReplayData struct {
	Version      string        `json:"version"`
	Session      string        `json:"session"` // ulid
	StartTime    string        `json:"startTime"`
	TickInterval time.Duration `json:"tickInterval"`
	Frames       []FrameInput  `json:"frames"`
}
