package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/fault"
)

// scripted returns one batch per call, then nothing.
func scripted(batches ...[]input.Event) input.Source {
	i := 0
	return input.SourceFunc(func() []input.Event {
		if i >= len(batches) {
			return nil
		}
		b := batches[i]
		i++
		return b
	})
}

func TestRecorder_RecordsEveryPoll(t *testing.T) {
	src := scripted(
		[]input.Event{input.Pressed(input.KeyDown)},
		nil,
		[]input.Event{input.Pressed(input.KeyDown), input.Pressed(input.KeyEnter)},
	)
	rec := NewRecorder(src, 30*time.Millisecond)

	assert.Equal(t, []input.Event{input.Pressed(input.KeyDown)}, rec.Poll())
	assert.Empty(t, rec.Poll())
	assert.Len(t, rec.Poll(), 2)

	data := rec.Data()
	require.Len(t, data.Frames, 3)
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Nil(t, data.Frames[1].Events)
	assert.Equal(t, 2, data.Frames[2].F)
	assert.Equal(t, input.Pressed(input.KeyEnter), data.Frames[2].Events[1])
	assert.Equal(t, 30*time.Millisecond, data.TickInterval)
	assert.Equal(t, FormatVersion, data.Version)
}

func TestRecorder_SessionIsULID(t *testing.T) {
	rec := NewRecorder(scripted(), time.Millisecond)

	_, err := ulid.ParseStrict(rec.Session())
	require.NoError(t, err)
	assert.Equal(t, "replay_"+rec.Session()+".json", rec.DefaultFilename())
	assert.NotEqual(t, rec.Session(), NewRecorder(scripted(), time.Millisecond).Session())
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(scripted([]input.Event{input.Closed()}, nil), time.Millisecond)
	rec.Poll()

	rec.Stop()

	assert.False(t, rec.IsRecording())
	assert.Equal(t, []input.Event(nil), rec.Poll())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(scripted(), time.Millisecond)

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	batches := [][]input.Event{
		{input.Pressed(input.KeyEnter)},
		nil,
		{input.Pressed(input.KeyUp), input.Pressed(input.KeyLeft)},
		{input.Closed()},
	}
	rec := NewRecorder(scripted(batches...), 30*time.Millisecond)
	for range batches {
		rec.Poll()
	}
	path := filepath.Join(t.TempDir(), rec.DefaultFilename())
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Session(), data.Session)
	assert.Equal(t, 30*time.Millisecond, data.TickInterval)

	replayer := NewReplayer(*data)
	assert.Equal(t, 4, replayer.TotalFrames())
	for i, want := range batches {
		require.False(t, replayer.Done())
		assert.Equal(t, want, replayer.Poll(), "frame %d", i)
	}
	assert.True(t, replayer.Done())
	assert.Nil(t, replayer.Poll())
}

func TestLoadReplay_Invalid(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "absent.json")},
		{"not json", write("garbage.json", "{{")},
		{"unknown key", write("key.json", `{"version":"1.0","frames":[{"f":0,"events":[{"kind":"key","key":"space"}]}]}`)},
		{"wrong version", write("version.json", `{"version":"0.1","frames":[{"f":0}]}`)},
		{"no frames", write("empty.json", `{"version":"1.0","frames":[]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := LoadReplay(tt.path)

			assert.Nil(t, data)
			assert.ErrorIs(t, err, fault.ErrReplayInvalid)
			assert.Equal(t, fault.CodeReplayInvalid, fault.Code(err))
		})
	}
}

func TestReplayer_CurrentFrameAndReset(t *testing.T) {
	replayer := NewReplayer(ReplayData{
		Version: FormatVersion,
		Frames: []FrameInput{
			{F: 0, Events: []input.Event{input.Pressed(input.KeyDown)}},
			{F: 1},
			{F: 2},
		},
	})

	assert.Equal(t, 0, replayer.CurrentFrame())
	replayer.Poll()
	replayer.Poll()
	assert.Equal(t, 2, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, []input.Event{input.Pressed(input.KeyDown)}, replayer.Poll())
}

func TestReplayer_IsSource(t *testing.T) {
	var _ input.Source = (*Replayer)(nil)
	var _ input.Source = (*Recorder)(nil)
}

func TestWriteToAndDecode(t *testing.T) {
	rec := NewRecorder(scripted([]input.Event{input.Pressed(input.KeyRight)}), 30*time.Millisecond)
	rec.Poll()

	var buf bytes.Buffer
	n, err := rec.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	data, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().Frames, data.Frames)
}

func TestWriteTo_Empty(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewRecorder(scripted(), time.Millisecond).WriteTo(&buf)

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
