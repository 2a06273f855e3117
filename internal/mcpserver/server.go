// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes postman2oas conversion as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/internal/config"
)

const serverInstructions = `postman2oas MCP server converts Postman collections (v2.0/v2.1 JSON) into OpenAPI 3.0 documents and infers JSON Schemas from example JSON values.

Configuration: defaults are configurable via POSTMAN2OAS_* environment variables set in your MCP client config.

Key settings:
- POSTMAN2OAS_CACHE_SIZE (default: 32) - number of cached conversions
- POSTMAN2OAS_CACHE_TTL (default: 15m) - lifetime of a cached conversion
- POSTMAN2OAS_MAX_INLINE_SIZE (default: 10485760) - byte limit for inline collection content

Caching: file inputs are keyed by absolute path and modification time, inline content by its SHA-256 hash.`

// server carries the per-process state shared by tool handlers.
type server struct {
	cfg    *config.Config
	cache  *expirable.LRU[string, *converter.ConversionResult]
	logger *slog.Logger
}

func newServer(cfg *config.Config, logger *slog.Logger) *server {
	if cfg == nil {
		cfg = config.Load()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &server{
		cfg:    cfg,
		cache:  expirable.NewLRU[string, *converter.ConversionResult](cfg.CacheSize, nil, cfg.CacheTTL),
		logger: logger,
	}
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil cfg loads configuration from the
// environment.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	s := newServer(cfg, logger)
	srv := mcp.NewServer(
		&mcp.Implementation{Name: "postman2oas", Version: postman2oas.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	s.registerAllTools(srv)
	s.logger.Info("mcp server starting", "server", postman2oas.UserAgent(), "cache_size", s.cfg.CacheSize, "cache_ttl", s.cfg.CacheTTL)
	return srv.Run(ctx, &mcp.StdioTransport{})
}

func (s *server) registerAllTools(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "convert_collection",
		Description: "Convert a Postman collection (v2.0 or v2.1 JSON) into an OpenAPI 3.0 document. Provide exactly one of collection.file or collection.content. Folders become tags, requests become operations, and example bodies become inferred schemas. Returns conversion stats, issues, and the document as YAML (default) or JSON. Use output to write the document to a file instead of returning it inline.",
	}, s.handleConvertCollection)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "infer_schema",
		Description: "Infer an OpenAPI schema from an example JSON value. Objects list their non-null keys as required; arrays take the item schema from their first element. Returns the schema as JSON.",
	}, s.handleInferSchema)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
