package fault

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceLoad(t *testing.T) {
	err := ResourceLoad("images/ghost_red_up.png", fs.ErrNotExist)

	assert.True(t, IsResourceLoad(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "cause should stay reachable")
	assert.False(t, IsInvalidTransition(err))
	assert.Equal(t, CodeResourceLoad, Code(err))
	assert.Contains(t, err.Error(), "ghost_red_up.png")
}

func TestResourceLoad_NilCause(t *testing.T) {
	err := ResourceLoad("fonts/menu.ttf", nil)

	assert.True(t, IsResourceLoad(err))
	assert.Equal(t, CodeResourceLoad, Code(err))
}

func TestInvalidTransition(t *testing.T) {
	err := InvalidTransition("Playground", "RequestStartGame")

	assert.True(t, IsInvalidTransition(err))
	assert.False(t, IsResourceLoad(err))
	assert.Equal(t, CodeInvalidTransition, Code(err))
	assert.Contains(t, err.Error(), "Playground cannot request RequestStartGame")
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("window.width", "must be positive, got %d", -1)

	assert.True(t, errors.Is(err, ErrConfigInvalid))
	assert.Equal(t, CodeConfigInvalid, Code(err))
	assert.Contains(t, err.Error(), "window.width: must be positive, got -1")
}

func TestReplayInvalid(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := ReplayInvalid("replay.json", cause)

	assert.True(t, errors.Is(err, ErrReplayInvalid))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, CodeReplayInvalid, Code(err))
}

func TestCode_PlainError(t *testing.T) {
	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))
}
