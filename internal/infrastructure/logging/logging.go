// Package logging builds the game's structured logger.
package logging

import (
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/oops"

	"github.com/younwookim/pacman/internal/fault"
)

// Supported output formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Setup creates a logger writing to w (stderr when nil).
// level is any level charmbracelet/log understands; format is text, json or
// logfmt and defaults to text.
func Setup(prefix, level, format string, w io.Writer) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fault.ConfigInvalid("log.level", "%v", err)
		}
		lvl = parsed
	}

	var formatter log.Formatter
	switch strings.ToLower(format) {
	case "", FormatText:
		formatter = log.TextFormatter
	case FormatJSON:
		formatter = log.JSONFormatter
	case FormatLogfmt:
		formatter = log.LogfmtFormatter
	default:
		return nil, fault.ConfigInvalid("log.format", "unknown format %q", format)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
		Formatter:       formatter,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// LogError logs err at error level. For oops errors the code, the domain and
// each context entry are logged as separate fields.
func LogError(logger *log.Logger, msg string, err error) {
	logger.Error(msg, Fields(err)...)
}

// Fields returns the key/value pairs describing err.
func Fields(err error) []any {
	o, ok := oops.AsOops(err)
	if !ok {
		return []any{"err", err}
	}

	fields := []any{"err", o.Error()}
	if code := fault.Code(err); code != "" {
		fields = append(fields, "code", code)
	}
	if domain := o.Domain(); domain != "" {
		fields = append(fields, "domain", domain)
	}
	ctx := o.Context()
	for _, k := range slices.Sorted(maps.Keys(ctx)) {
		fields = append(fields, k, ctx[k])
	}
	return fields
}
