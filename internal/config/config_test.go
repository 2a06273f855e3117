package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv isolates tests from the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogFile, EnvWorkers, EnvCacheSize, EnvCacheTTL, EnvMaxInline} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c := Load()

	assert.Equal(t, "warn", c.LogLevel)
	assert.Empty(t, c.LogFile)
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.Equal(t, 32, c.CacheSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/postman2oas.log")
	t.Setenv(EnvWorkers, "4")
	t.Setenv(EnvCacheSize, "8")
	t.Setenv(EnvCacheTTL, "90s")
	t.Setenv(EnvMaxInline, "1024")

	c := Load()

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/tmp/postman2oas.log", c.LogFile)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 8, c.CacheSize)
	assert.Equal(t, 90*time.Second, c.CacheTTL)
	assert.Equal(t, int64(1024), c.MaxInlineSize)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWorkers, "-2")
	t.Setenv(EnvCacheSize, "many")
	t.Setenv(EnvCacheTTL, "soon")

	c := Load()

	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.Equal(t, 32, c.CacheSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
}
