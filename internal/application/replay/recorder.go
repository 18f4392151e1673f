package replay

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/younwookim/pacman/internal/application/input"
)

// Recorder is an input.Source that records everything polled through it.
type Recorder struct {
	src    input.Source
	data   ReplayData
	active bool
}

// NewRecorder wraps src. tickInterval is stored so a replay can run at the
// recorded pace.
func NewRecorder(src input.Source, tickInterval time.Duration) *Recorder {
	return &Recorder{
		src: src,
		data: ReplayData{
			Version:      FormatVersion,
			Session:      ulid.Make().String(),
			StartTime:    time.Now().Format(time.RFC3339),
			TickInterval: tickInterval,
			Frames:       make([]FrameInput, 0, 2048), // ~1 minute at 30ms ticks
		},
		active: true,
	}
}

// Poll implements input.Source. Each call is one tick, recorded even when
// nothing happened so the replay keeps the same timing.
func (r *Recorder) Poll() []input.Event {
	events := r.src.Poll()
	if !r.active {
		return events
	}

	frame := FrameInput{F: len(r.data.Frames)}
	if len(events) > 0 {
		frame.Events = append([]input.Event(nil), events...)
	}
	r.data.Frames = append(r.data.Frames, frame)
	return events
}

// WriteTo encodes the recording as indented JSON.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	errs := oops.In("replay").With("session", r.data.Session)
	if len(r.data.Frames) == 0 {
		return 0, errs.Errorf("nothing recorded")
	}

	cw := &countingWriter{w: w}
	enc := json.NewEncoder(cw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		return cw.n, errs.Wrapf(err, "encode recording")
	}
	return cw.n, nil
}

// Save writes the recording to path.
func (r *Recorder) Save(path string) error {
	if len(r.data.Frames) == 0 {
		return oops.In("replay").With("path", path).Errorf("nothing recorded")
	}

	f, err := os.Create(path)
	if err != nil {
		return oops.In("replay").With("path", path).Wrapf(err, "create recording")
	}
	if _, err := r.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Stop stops recording. Polls still pass through.
func (r *Recorder) Stop() { r.active = false }

// IsRecording reports whether polls are still being recorded.
func (r *Recorder) IsRecording() bool { return r.active }

// FrameCount returns the number of recorded ticks.
func (r *Recorder) FrameCount() int { return len(r.data.Frames) }

// Session returns the recording's session id.
func (r *Recorder) Session() string { return r.data.Session }

// Data returns the recorded data.
func (r *Recorder) Data() ReplayData { return r.data }

// DefaultFilename names the recording after its session id.
func (r *Recorder) DefaultFilename() string {
	return "replay_" + r.data.Session + ".json"
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
