package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/tetrita/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tetrita", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetrita.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 30\nseed: 9\nwindow:\n  scale: 3\n"), 0o644))

	cfg, err := parseFlags(newFlagSet(), []string{"-config", path, "-seed", "4", "-log-mode", "prod"})
	require.NoError(t, err)

	assert.Equal(t, uint64(4), cfg.Seed, "explicit flag wins")
	assert.Equal(t, 30, cfg.TickRate, "unset flag keeps the file value")
	assert.Equal(t, 3.0, cfg.Window.Scale)
	assert.Equal(t, "prod", cfg.Log.Mode)
}

func TestParseFlagsZeroOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetrita.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\ndebug_ui: true\n"), 0o644))

	cfg, err := parseFlags(newFlagSet(), []string{"-config", path, "-seed", "0", "-debug-ui=false"})
	require.NoError(t, err)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.DebugUI)
}

func TestParseFlagsInvalid(t *testing.T) {
	_, err := parseFlags(newFlagSet(), []string{"-tick-rate", "-5"})
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = parseFlags(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
