package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/plus3/tetrita/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for name, want := range map[string]logger.Mode{
		"dev":     logger.ModeDev,
		"PROD":    logger.ModeProd,
		"silence": logger.ModeSilence,
	} {
		got, err := logger.ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := logger.ParseMode("verbose")
	assert.ErrorContains(t, err, "verbose")

	assert.Equal(t, "prod", logger.ModeProd.String())
	assert.Equal(t, "Mode(9)", logger.Mode(9).String())
}

func TestDevLogsDebugText(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Mode: logger.ModeDev, Writer: &buf})
	require.NoError(t, err)

	log.Debug("state changed", "to", "Play")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "to=Play")
}

func TestProdLogsInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Mode: logger.ModeProd, Writer: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("game over", "score", 120)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "game over", rec["msg"])
	assert.Equal(t, float64(120), rec["score"])
}

func TestFormatOverride(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Mode: logger.ModeDev, Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.Debug("tick")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))

	_, err = logger.New(logger.Options{Format: "xml"})
	assert.ErrorContains(t, err, "xml")
}

func TestSilence(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Mode: logger.ModeSilence, Writer: &buf, Format: "bogus"})
	require.NoError(t, err)

	log.Error("dropped")
	assert.Empty(t, buf.String())
	assert.False(t, logger.NewDefault(logger.ModeSilence).Enabled(t.Context(), 12))
}
