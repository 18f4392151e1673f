package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/fault"
)

// Replayer is an input.Source that plays recorded frames back, one frame
// per Poll.
type Replayer struct {
	data ReplayData
	next int
}

// NewReplayer plays data from its first frame.
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode reads a recording written by Recorder.WriteTo.
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported version %q", data.Version)
	}
	if len(data.Frames) == 0 {
		return nil, errors.New("no frames")
	}
	return &data, nil
}

// LoadReplay reads the recording at path. Every failure is REPLAY_INVALID.
func LoadReplay(path string) (*ReplayData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fault.ReplayInvalid(path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := Decode(f)
	if err != nil {
		return nil, fault.ReplayInvalid(path, err)
	}
	return data, nil
}

// Poll implements input.Source. It returns nothing once every frame has
// been played.
func (r *Replayer) Poll() []input.Event {
	if r.Done() {
		return nil
	}
	events := r.data.Frames[r.next].Events
	r.next++
	return events
}

// Done reports whether every frame has been played.
func (r *Replayer) Done() bool { return r.next >= len(r.data.Frames) }

// CurrentFrame is the number of frames played so far.
func (r *Replayer) CurrentFrame() int { return r.next }

func (r *Replayer) TotalFrames() int { return len(r.data.Frames) }

// Session returns the id of the recorded session.
func (r *Replayer) Session() string { return r.data.Session }

// Reset rewinds to the first frame.
func (r *Replayer) Reset() { r.next = 0 }
