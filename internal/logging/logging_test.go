package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/postman2oas/oaserrors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestNew_Writer(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "info"
	cfg.Writer = &buf

	logger, cleanup, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	logger.Debug("hidden")
	logger.Info("converted collection", "paths", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "converted collection")
	assert.Contains(t, out, "paths=3")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "postman2oas.log")
	cfg := DefaultConfig()
	cfg.FilePath = path

	logger, cleanup, err := New(cfg)
	require.NoError(t, err)
	logger.Warn("item skipped", "item", "Ping")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "item skipped")
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	_, _, err := New(cfg)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cleanup, err := Setup(Config{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	slog.Debug("default logger replaced")
	assert.Contains(t, buf.String(), "default logger replaced")
}
