package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/internal/cliutil"
)

func newVersionCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the postman2oas version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if verbose {
				cliutil.Writef(cmd.OutOrStdout(), "%s\n", postman2oas.BuildInfo())
				return
			}
			cliutil.Writef(cmd.OutOrStdout(), "postman2oas v%s\n", postman2oas.Version())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include commit, build time and Go version")
	return cmd
}
