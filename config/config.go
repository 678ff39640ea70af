// Package config loads the settings of the tetrita binaries from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/plus3/tetrita/logger"
	"github.com/plus3/tetrita/tetris"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid marks a setting that is out of range.
	ErrInvalid = errors.New("invalid setting")
	// ErrUnknownButton marks a key binding for a button that does not exist.
	ErrUnknownButton = errors.New("unknown button")
)

type Config struct {
	Window   Window `yaml:"window"`
	TickRate int    `yaml:"tick_rate"`
	// Seed seeds the piece generator. Zero picks a random seed.
	Seed    uint64  `yaml:"seed"`
	Log     Log     `yaml:"log"`
	DebugUI bool    `yaml:"debug_ui"`
	Inspect Inspect `yaml:"inspect"`
	Input   Input   `yaml:"input"`
	// Keys maps button names to the names of the keys bound to them.
	Keys map[string][]string `yaml:"keys"`
}

type Window struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

type Log struct {
	Mode   string `yaml:"mode"`
	Format string `yaml:"format"`
}

type Inspect struct {
	// Addr is the listen address of the inspection server. Empty disables it.
	Addr string `yaml:"addr"`
}

// Input controls key repeat for held movement keys.
type Input struct {
	RepeatDelay time.Duration `yaml:"repeat_delay"`
	RepeatRate  time.Duration `yaml:"repeat_rate"`
}

// DefaultKeys is the classic layout: arrows, numeric keypad and digit row.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"accelerate": {"ArrowDown", "Numpad2", "Digit2"},
		"slam":       {"PageDown", "Space", "Numpad3", "Digit3"},
		"left":       {"ArrowLeft", "Numpad4", "Digit4"},
		"right":      {"ArrowRight", "Numpad6", "Digit6"},
		"rotate":     {"ArrowUp", "Numpad8", "Numpad5", "Digit8", "Digit5"},
		"quit":       {"X", "Q", "Escape"},
		"yes":        {"Y"},
		"no":         {"N"},
		"pause":      {"P"},
	}
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Window:   Window{Scale: 2, Title: "Tetrita"},
		TickRate: 60,
		Log:      Log{Mode: "dev", Format: "text"},
		Input: Input{
			RepeatDelay: 250 * time.Millisecond,
			RepeatRate:  50 * time.Millisecond,
		},
		Keys: DefaultKeys(),
	}
}

// Load reads path over the defaults and validates the result. Buttons missing from the
// file's keys section keep their default bindings. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every bad setting at once.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Scale <= 0 {
		invalid("window.scale must be positive, got %v", c.Window.Scale)
	}
	if c.TickRate <= 0 || c.TickRate > 1000 {
		invalid("tick_rate must be in 1..1000, got %d", c.TickRate)
	}
	if _, err := logger.ParseMode(c.Log.Mode); err != nil {
		invalid("log.mode: %v", err)
	}
	if f := strings.ToLower(c.Log.Format); f != "" && f != "text" && f != "json" {
		invalid("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Input.RepeatDelay < 0 {
		invalid("input.repeat_delay must not be negative, got %v", c.Input.RepeatDelay)
	}
	if c.Input.RepeatRate <= 0 {
		invalid("input.repeat_rate must be positive, got %v", c.Input.RepeatRate)
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Bindings resolves the keys section into buttons. Key names are returned as written; the
// frontend maps them to its own key codes.
func (c *Config) Bindings() (map[tetris.Button][]string, error) {
	out := make(map[tetris.Button][]string, len(c.Keys))
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(c.Keys)) {
		b, ok := tetris.ParseButton(name)
		if !ok || b == tetris.ButtonAny {
			errs = append(errs, fmt.Errorf("%w: keys.%s", ErrUnknownButton, name))
			continue
		}
		out[b] = append(out[b], c.Keys[name]...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// LogMode returns the parsed log mode. Call it on a validated config.
func (c *Config) LogMode() logger.Mode {
	m, _ := logger.ParseMode(c.Log.Mode)
	return m
}

// Interval is the time between two game ticks.
func (c *Config) Interval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
