// Package xlog builds the process logger for the ahuff command.
package xlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "AHUFF_LOG_LEVEL"
	EnvLogFormat = "AHUFF_LOG_FORMAT"
	EnvLogColor  = "AHUFF_LOG_COLOR"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config selects the level, format, and colouring of the logger.
type Config struct {
	Level  string
	Format string
	Color  string
}

// DefaultConfig logs warnings and errors to a console writer.
var DefaultConfig = Config{
	Level:  "warn",
	Format: FormatConsole,
	Color:  ColorAuto,
}

// ConfigFromEnv returns DefaultConfig overridden by any AHUFF_LOG_*
// variables that are set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Format = v
	}
	if v, ok := os.LookupEnv(EnvLogColor); ok && v != "" {
		cfg.Color = v
	}
	return cfg
}

// Validate checks that every field holds a known value.
func (cfg Config) Validate() error {
	if _, err := ParseLevel(cfg.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Format) {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want %s or %s)", cfg.Format, FormatConsole, FormatJSON)
	}
	switch strings.ToLower(cfg.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown colour mode %q (want %s, %s, or %s)", cfg.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

// ParseLevel maps a level name to a zerolog.Level.  "warning" is accepted
// as an alias for "warn".
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// New builds a logger writing to w.  It also lowers zerolog's global level
// to the configured level, so that trace output is not filtered globally.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	level, _ := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	out := w
	if strings.ToLower(cfg.Format) == FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !UseColor(cfg.Color, w),
			TimeFormat: time.TimeOnly,
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// UseColor decides whether output to w should be coloured.  In auto mode
// that is the case only when w is a terminal.
func UseColor(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
