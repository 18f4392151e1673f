// Package fault defines the error kinds the game can terminate with.
//
// Every constructor returns an oops error carrying a stable code, so the
// logging layer can report it structurally, and wraps a sentinel so callers
// can branch with errors.Is.
package fault

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Error codes attached to oops errors.
const (
	CodeResourceLoad      = "RESOURCE_LOAD_FAILURE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeReplayInvalid     = "REPLAY_INVALID"
)

// Sentinels matched with errors.Is.
var (
	ErrResourceLoad      = errors.New("resource load failure")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrReplayInvalid     = errors.New("invalid replay")
)

// ResourceLoad reports a sprite, image or font that could not be loaded.
func ResourceLoad(path string, cause error) error {
	return oops.
		Code(CodeResourceLoad).
		In("assets").
		With("path", path).
		Wrapf(join(ErrResourceLoad, cause), "load %q", path)
}

// InvalidTransition reports a signal the active screen is not allowed to emit.
func InvalidTransition(screen, signal string) error {
	return oops.
		Code(CodeInvalidTransition).
		In("game").
		With("screen", screen, "signal", signal).
		Wrapf(ErrInvalidTransition, "%s cannot request %s", screen, signal)
}

// ConfigInvalid reports a configuration value that failed validation.
func ConfigInvalid(field, format string, args ...any) error {
	return oops.
		Code(CodeConfigInvalid).
		In("config").
		With("field", field).
		Wrapf(ErrConfigInvalid, "%s: %s", field, fmt.Sprintf(format, args...))
}

// ConfigLoad wraps a failure to read or decode a configuration source.
func ConfigLoad(source string, cause error) error {
	return oops.
		Code(CodeConfigInvalid).
		In("config").
		With("source", source).
		Wrapf(join(ErrConfigInvalid, cause), "load %s", source)
}

// ReplayInvalid reports a replay file that cannot be used.
func ReplayInvalid(path string, cause error) error {
	return oops.
		Code(CodeReplayInvalid).
		In("replay").
		With("path", path).
		Wrapf(join(ErrReplayInvalid, cause), "replay %q", path)
}

// IsResourceLoad reports whether err is a resource load failure.
func IsResourceLoad(err error) bool { return errors.Is(err, ErrResourceLoad) }

// IsInvalidTransition reports whether err is an invalid transition.
func IsInvalidTransition(err error) bool { return errors.Is(err, ErrInvalidTransition) }

// Code returns the oops code of err, or "" when err carries none.
func Code(err error) string {
	o, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code, _ := o.Code().(string)
	return code
}

func join(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
