package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/younwookim/pacman/internal/application/input"
	"github.com/younwookim/pacman/internal/application/screen"
	"github.com/younwookim/pacman/internal/fault"
	"github.com/younwookim/pacman/internal/infrastructure/render"
	"github.com/younwookim/pacman/internal/infrastructure/render/rendertest"
)

func TestRunHeadless_MaxTicks(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	f := newFixture(t, Options{})
	rec := rendertest.New(10, 10)

	err := f.c.RunHeadless(context.Background(), 0, rec, 5)

	require.NoError(t, err)
	assert.Equal(t, 5, f.c.Ticks())
	assert.Equal(t, 5, f.menu.advanceCalled)
	assert.Equal(t, 5, f.menu.drawCalled)
	assert.True(t, f.c.Running())
}

func TestRunHeadless_StopsOnQuit(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	f := newFixture(t, Options{})
	f.src.push(press(input.KeyEnter))
	f.src.push()
	f.src.push(press(input.KeyEscape))
	f.src.push(press(input.KeyEscape))

	err := f.c.RunHeadless(context.Background(), time.Millisecond, render.Discard{}, 0)

	require.NoError(t, err)
	assert.False(t, f.c.Running())
	assert.Equal(t, screen.Menu, f.c.Active())
	assert.Equal(t, 3, f.c.Ticks())
	assert.Equal(t, 4, f.src.polls)
}

func TestRunHeadless_ContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	f := newFixture(t, Options{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := f.c.RunHeadless(ctx, time.Millisecond, render.Discard{}, 0)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, f.c.Running())
	assert.Positive(t, f.c.Ticks())
}

func TestRunHeadless_AlreadyCancelled(t *testing.T) {
	f := newFixture(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.c.RunHeadless(ctx, 0, render.Discard{}, 0)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, f.c.Ticks())
}

func TestRunHeadless_DebugFault(t *testing.T) {
	f := newFixture(t, Options{Debug: true})
	f.src.push(press(input.KeyLeft))

	err := f.c.RunHeadless(context.Background(), 0, render.Discard{}, 10)

	assert.True(t, fault.IsInvalidTransition(err))
	assert.Equal(t, 0, f.menu.drawCalled)
}
