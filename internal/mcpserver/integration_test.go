package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/postman2oas/internal/testutil"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	srv := mcp.NewServer(
		&mcp.Implementation{Name: "postman2oas-test", Version: "test"},
		nil,
	)
	newTestServer(t).registerAllTools(srv)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s", tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %s", tool.Name)
	}
	assert.ElementsMatch(t, []string{"convert_collection", "infer_schema"}, names)
}

func TestIntegration_ConvertCollection(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert_collection",
		Arguments: map[string]any{
			"collection": map[string]any{"content": testutil.PetStoreCollection},
			"format":     "json",
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	raw, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	var output convertOutput
	require.NoError(t, json.Unmarshal(raw, &output))

	assert.Equal(t, "Pet Store", output.Title)
	assert.Equal(t, 2, output.Stats.Operations)
	assert.Contains(t, output.Document, `"/pets"`)
}

func TestIntegration_InferSchemaError(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "infer_schema",
		Arguments: map[string]any{"json": "{broken"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
