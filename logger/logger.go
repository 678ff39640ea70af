// Package logger assembles the slog loggers used by the tetrita binaries.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Mode selects the level and default output of a logger.
type Mode uint8

const (
	// ModeDev logs everything down to Debug as text on stderr.
	ModeDev Mode = iota
	// ModeProd logs Info and above as JSON on stderr.
	ModeProd
	// ModeSilence drops every record.
	ModeSilence
)

var modeNames = map[string]Mode{
	"dev":     ModeDev,
	"prod":    ModeProd,
	"silence": ModeSilence,
}

// ParseMode maps "dev", "prod" or "silence" to a Mode.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	return ModeDev, fmt.Errorf("unknown log mode %q", s)
}

func (m Mode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Options configures New. Zero values pick the mode defaults.
type Options struct {
	Mode Mode
	// Format is "text" or "json". Empty picks the mode default.
	Format string
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// New builds a logger from opts.
func New(opts Options) (*slog.Logger, error) {
	h, err := buildHandler(opts)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

// NewDefault builds a logger for mode with its default format on stderr.
func NewDefault(mode Mode) *slog.Logger {
	h, _ := buildHandler(Options{Mode: mode})
	return slog.New(h)
}

func buildHandler(opts Options) (slog.Handler, error) {
	if opts.Mode == ModeSilence {
		return slog.DiscardHandler, nil
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelDebug
	format := "text"
	if opts.Mode == ModeProd {
		level = slog.LevelInfo
		format = "json"
	}
	if opts.Format != "" {
		format = strings.ToLower(opts.Format)
	}

	ho := &slog.HandlerOptions{Level: level}
	switch format {
	case "text":
		return slog.NewTextHandler(w, ho), nil
	case "json":
		return slog.NewJSONHandler(w, ho), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
}
