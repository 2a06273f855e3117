package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/postman2oas/infer"
)

type inferInput struct {
	JSON string `json:"json" jsonschema:"An example JSON value such as an object or array"`
}

type inferOutput struct {
	Type   string `json:"type"`
	Schema string `json:"schema"`
}

func (s *server) handleInferSchema(_ context.Context, _ *mcp.CallToolRequest, input inferInput) (*mcp.CallToolResult, inferOutput, error) {
	if input.JSON == "" {
		return errResult(fmt.Errorf("json is required")), inferOutput{}, nil
	}
	if int64(len(input.JSON)) > s.cfg.MaxInlineSize {
		return errResult(fmt.Errorf("json size %d bytes exceeds maximum %d bytes", len(input.JSON), s.cfg.MaxInlineSize)), inferOutput{}, nil
	}

	schema, _, err := infer.FromJSON([]byte(input.JSON))
	if err != nil {
		return errResult(err), inferOutput{}, nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return errResult(err), inferOutput{}, nil
	}
	return nil, inferOutput{Type: schema.Type, Schema: string(data)}, nil
}
