package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/erraggy/postman2oas/infer"
	"github.com/erraggy/postman2oas/internal/cliutil"
	"github.com/erraggy/postman2oas/oaserrors"
)

func newInferCommand(_ *globalOptions) *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "infer [file|-]",
		Short: "Print the schema inferred from an example JSON value",
		Long: `Read one JSON value from a file or stdin and print the OpenAPI schema that
convert would infer for it. Objects list their non-null keys as required and
arrays take their item schema from the first element.`,
		Example: `  postman2oas infer response.json
  echo '{"id": 1, "tags": ["a"]}' | postman2oas infer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := StdinFilePath
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			schema, _, err := infer.FromJSON(data)
			if err != nil {
				return err
			}
			var out []byte
			if compact {
				out, err = json.Marshal(schema)
			} else {
				out, err = json.MarshalIndent(schema, "", "  ")
			}
			if err != nil {
				return fmt.Errorf("marshaling schema: %w", err)
			}
			cliutil.Writef(cmd.OutOrStdout(), "%s\n", out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print the schema on one line")
	return cmd
}

// readInput reads path, or stdin when path is StdinFilePath.
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &oaserrors.FileError{Path: "<stdin>", Op: "read", Cause: err}
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.FileError{Path: path, Op: "read", Cause: err}
	}
	return data, nil
}
