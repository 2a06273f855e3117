// Package config loads runtime settings from POSTMAN2OAS_* environment
// variables. Command-line flags take precedence over these values.
package config

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"
)

// Environment variable names.
const (
	EnvLogLevel  = "POSTMAN2OAS_LOG_LEVEL"
	EnvLogFile   = "POSTMAN2OAS_LOG_FILE"
	EnvWorkers   = "POSTMAN2OAS_WORKERS"
	EnvCacheSize = "POSTMAN2OAS_CACHE_SIZE"
	EnvCacheTTL  = "POSTMAN2OAS_CACHE_TTL"
	EnvMaxInline = "POSTMAN2OAS_MAX_INLINE_SIZE"
)

// Config holds settings shared by the CLI and the MCP server.
type Config struct {
	LogLevel  string        // POSTMAN2OAS_LOG_LEVEL, default "warn"
	LogFile   string        // POSTMAN2OAS_LOG_FILE, default "" (stderr)
	Workers   int           // POSTMAN2OAS_WORKERS, default runtime.NumCPU()
	CacheSize int           // POSTMAN2OAS_CACHE_SIZE, default 32
	CacheTTL  time.Duration // POSTMAN2OAS_CACHE_TTL, default 15m

	// MaxInlineSize caps inline collection content sent to the MCP server.
	MaxInlineSize int64 // POSTMAN2OAS_MAX_INLINE_SIZE, default 10 MiB
}

// Load reads the environment. Invalid values log a warning and fall back to
// the default.
func Load() *Config {
	return &Config{
		LogLevel:  envString(EnvLogLevel, "warn"),
		LogFile:   envString(EnvLogFile, ""),
		Workers:   envInt(EnvWorkers, runtime.NumCPU()),
		CacheSize: envInt(EnvCacheSize, 32),
		CacheTTL:  envDuration(EnvCacheTTL, 15*time.Minute),

		MaxInlineSize: int64(envInt(EnvMaxInline, 10*1024*1024)),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
