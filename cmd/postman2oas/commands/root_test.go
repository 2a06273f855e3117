package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/internal/config"
	"github.com/erraggy/postman2oas/internal/testutil"
)

// execute runs the command tree with args and returns what it printed.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{config.EnvLogLevel, config.EnvLogFile, config.EnvWorkers} {
		t.Setenv(key, "")
	}
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "postman2oas v"+postman2oas.Version()+"\n", out)

	out, _, err = execute(t, nil, "version", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")

	out, _, err = execute(t, nil, "--version")
	require.NoError(t, err)
	assert.Equal(t, "postman2oas v"+postman2oas.Version()+"\n", out)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, nil, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log-level")
}

func TestRoot_LogFile(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteFile(t, dir, "pets.json", testutil.PetStoreCollection)
	logPath := filepath.Join(dir, "logs", "run.log")

	_, stderr, err := execute(t, nil, "--log-level", "debug", "--log-file", logPath,
		"convert", "--output-dir", filepath.Join(dir, "out"), input)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "converted collection")
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, _, err := execute(t, nil, "frobnicate")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown command"))
}
