// Package logging configures the process-wide slog logger, writing to stderr
// or to a size-rotated log file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/erraggy/postman2oas/internal/fileutil"
	"github.com/erraggy/postman2oas/oaserrors"
)

// Config holds logging configuration.
type Config struct {
	Level      string    // debug, info, warn, error
	FilePath   string    // log file; empty logs to Writer
	MaxSizeMB  int       // size in MB before rotation
	MaxBackups int       // rotated files to keep
	MaxAgeDays int       // days to keep rotated files
	Compress   bool      // gzip rotated files
	Writer     io.Writer // destination when FilePath is empty; nil means stderr
}

// DefaultConfig returns the defaults used by the CLI.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// ParseLevel maps a level name to a slog level. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, &oaserrors.ConfigError{
			Option:  "log-level",
			Value:   s,
			Message: "must be debug, info, warn or error",
		}
	}
}

// New builds a text logger for cfg without installing it. The returned
// cleanup closes the log file, if any.
func New(cfg Config) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	writer := cfg.Writer
	if writer == nil {
		writer = os.Stderr
	}
	cleanup := func() error { return nil }

	if cfg.FilePath != "" {
		if _, err := fileutil.EnsureDir(filepath.Dir(cfg.FilePath)); err != nil {
			return nil, nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler), cleanup, nil
}

// Setup installs the logger built from cfg as the slog default.
// The returned cleanup should be called on shutdown.
func Setup(cfg Config) (func() error, error) {
	logger, cleanup, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return cleanup, nil
}
