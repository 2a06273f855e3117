package mcpserver

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/postman2oas/internal/config"
)

// newTestServer returns a server with a small cache and a silent logger.
func newTestServer(t *testing.T) *server {
	t.Helper()
	return newServer(&config.Config{
		CacheSize:     4,
		CacheTTL:      time.Minute,
		MaxInlineSize: 1 << 20,
	}, slog.New(slog.DiscardHandler))
}

func TestNewServer_Defaults(t *testing.T) {
	t.Setenv(config.EnvCacheSize, "3")
	s := newServer(nil, nil)
	require.NotNil(t, s.cfg)
	assert.Equal(t, 3, s.cfg.CacheSize)
	assert.NotNil(t, s.logger)
	assert.Zero(t, s.cache.Len())
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("file error: read /home/user/secret/pets.json: no such file"),
			want: "file error: read <path>: no such file",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("invalid JSON at line 5"),
			want: "invalid JSON at line 5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	res := errResult(fmt.Errorf("open /tmp/x.json: denied"))
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "open <path>: denied", text.Text)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))
	s := makeSlice[int](3)
	assert.NotNil(t, s)
	assert.Equal(t, 0, len(s))
	assert.Equal(t, 3, cap(s))
}
