package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/postman2oas/internal/mcpserver"
)

func newMCPCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
convert_collection and infer_schema tools. Logs go to stderr or --log-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context(), g.cfg, g.logger)
		},
	}
}
