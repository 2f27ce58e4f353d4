// Package logging configures the process-wide zerolog logger used for
// diagnostics. User-facing status lines do not go through it.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel   = "RUSTLINT_LOG_LEVEL"
	EnvLogNoColor = "RUSTLINT_LOG_NOCOLOR"
)

// Options controls logger construction. Zero values fall back to the
// environment, then to defaults.
type Options struct {
	Level   string
	NoColor bool
	Writer  io.Writer
}

// New builds a console logger writing to opts.Writer (stderr by default).
func New(opts Options) zerolog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.WarnLevel
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		level = lvl
	}
	if lvl, ok := ParseLevel(opts.Level); ok {
		level = lvl
	}

	noColor := opts.NoColor
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok && v {
		noColor = true
	}

	console := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Configure installs a logger built from opts as the global logger.
func Configure(opts Options) zerolog.Logger {
	logger := New(opts)
	log.Logger = logger
	return logger
}

// ParseLevel maps a level name to a zerolog level. The second return value
// is false for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
