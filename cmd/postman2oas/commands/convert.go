package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/internal/batch"
	"github.com/erraggy/postman2oas/internal/cliutil"
	"github.com/erraggy/postman2oas/internal/fileutil"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Default directories for batch mode.
const (
	DefaultInputDir  = "collections"
	DefaultOutputDir = "output"
)

// convertFlags contains flags for the convert command.
type convertFlags struct {
	input       string
	output      string
	inputDir    string
	outputDir   string
	format      string
	workers     int
	includeInfo bool
}

func newConvertCommand(g *globalOptions) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert Postman collections to OpenAPI documents",
		Long: `Convert a single Postman collection, or every *.json collection in a directory.

With a file argument (or --input), that collection is converted and written to
--output, or to <output-dir>/<name>_openapi.yaml. Use '-' to read from stdin;
without --output the document is then written to stdout.

Without a file, every *.json file directly inside --input-dir is converted into
--output-dir. A collection that fails is reported and the run continues.

Bare names given to --input and --output are resolved inside --input-dir and
--output-dir respectively.`,
		Example: `  postman2oas convert pets.postman_collection.json
  postman2oas convert --input pets.json --output pets.yaml
  postman2oas convert --input-dir collections --output-dir output --format json
  cat pets.json | postman2oas convert -q - > openapi.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, g, flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.input, "input", "i", "", "collection to convert (alternative to the file argument)")
	f.StringVarP(&flags.output, "output", "o", "", "output file for single-file mode")
	f.StringVar(&flags.inputDir, "input-dir", DefaultInputDir, "directory holding Postman collections")
	f.StringVar(&flags.outputDir, "output-dir", DefaultOutputDir, "directory for generated documents")
	f.StringVarP(&flags.format, "format", "f", string(openapi.FormatYAML), "output format: yaml or json")
	f.IntVar(&flags.workers, "workers", 0, "concurrent conversions in batch mode (default from POSTMAN2OAS_WORKERS or CPU count)")
	f.BoolVar(&flags.includeInfo, "include-info", false, "also print informational issues such as skipped items")
	return cmd
}

func runConvert(cmd *cobra.Command, g *globalOptions, flags *convertFlags, args []string) error {
	format, err := openapi.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	input := flags.input
	if len(args) == 1 {
		if input != "" {
			return fmt.Errorf("give the collection either as an argument or with --input, not both")
		}
		input = args[0]
	} else if input != "" {
		input = fileutil.Resolve(flags.inputDir, input)
	}

	conv := converter.New()
	conv.IncludeInfo = flags.includeInfo
	conv.Logger = postman.NewSlogAdapter(g.logger)

	if input == "" {
		if flags.output != "" {
			return fmt.Errorf("--output applies to single-file mode; use --output-dir for batch mode")
		}
		return runBatch(cmd, g, flags, conv, format)
	}
	return runSingle(cmd, g, flags, conv, input, format)
}

func runSingle(cmd *cobra.Command, g *globalOptions, flags *convertFlags, conv *converter.Converter, input string, format openapi.Format) error {
	out := cmd.OutOrStdout()

	if input == StdinFilePath {
		result, err := converter.ConvertWithOptions(
			converter.WithReader(cmd.InOrStdin()),
			converter.WithIncludeInfo(conv.IncludeInfo),
			converter.WithLogger(conv.Logger),
		)
		if err != nil {
			return fmt.Errorf("reading Postman collection from stdin: %w", err)
		}
		data, err := result.Document.MarshalFormat(format)
		if err != nil {
			return err
		}
		if !g.quiet {
			cliutil.WriteIssues(cmd.ErrOrStderr(), result.Issues, flags.includeInfo)
		}
		if flags.output == "" {
			if _, err := out.Write(data); err != nil {
				return fmt.Errorf("writing document to stdout: %w", err)
			}
			return nil
		}
		output := fileutil.Resolve(flags.outputDir, flags.output)
		if err := prepareOutputDir(out, g.quiet, filepath.Dir(output)); err != nil {
			return err
		}
		if err := fileutil.WriteFile(output, data); err != nil {
			return err
		}
		if !g.quiet {
			cliutil.Writef(out, "Converted to %s\n", output)
		}
		return nil
	}

	output := filepath.Join(flags.outputDir, fileutil.OutputName(input, format.Extension()))
	if flags.output != "" {
		output = fileutil.Resolve(flags.outputDir, flags.output)
	}
	if err := prepareOutputDir(out, g.quiet, filepath.Dir(output)); err != nil {
		return err
	}

	if !g.quiet {
		cliutil.Writef(out, "Processing: %s\n", input)
	}
	result, err := batch.ConvertFile(conv, input, output, format)
	if err != nil {
		return fmt.Errorf("reading Postman collection %s: %w", input, err)
	}
	if !g.quiet {
		cliutil.WriteIssues(out, result.Issues, flags.includeInfo)
		cliutil.Writef(out, "Converted to %s\n", output)
	}
	return nil
}

func runBatch(cmd *cobra.Command, g *globalOptions, flags *convertFlags, conv *converter.Converter, format openapi.Format) error {
	out := cmd.OutOrStdout()

	info, err := os.Stat(flags.inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("input directory '%s' does not exist; create it and add your Postman collections", flags.inputDir)
	}
	if err := prepareOutputDir(out, g.quiet, flags.outputDir); err != nil {
		return err
	}

	workers := flags.workers
	if workers <= 0 {
		workers = g.cfg.Workers
	}

	summary, err := batch.Run(cmd.Context(), batch.Options{
		InputDir:  flags.inputDir,
		OutputDir: flags.outputDir,
		Format:    format,
		Workers:   workers,
		Converter: conv,
		Logger:    g.logger,
		OnStart: func(input string) {
			if !g.quiet {
				cliutil.Writef(out, "Processing: %s\n", input)
			}
		},
		OnFile: func(fr batch.FileResult) {
			if fr.Err != nil {
				cliutil.Writef(cmd.ErrOrStderr(), "Error reading Postman collection %s: %v\n", fr.Input, fr.Err)
				return
			}
			if g.quiet {
				return
			}
			cliutil.WriteIssues(out, fr.Result.Issues, flags.includeInfo)
			cliutil.Writef(out, "Converted to %s\n", fr.Output)
		},
	})
	if err != nil {
		return err
	}

	if len(summary.Files) == 0 {
		cliutil.Writef(out, "No JSON files found in '%s'. Please add your Postman collections to this directory.\n", flags.inputDir)
		return nil
	}
	if !g.quiet {
		writeSummary(out, summary)
	}
	if summary.Processed == 0 {
		return errAllFailed
	}
	return nil
}

// errAllFailed is returned when a batch found collections but converted none.
var errAllFailed = errors.New("no collection could be converted")

func writeSummary(w io.Writer, s *batch.Summary) {
	if s.Failed > 0 {
		cliutil.Writef(w, "Processed %d collection(s), %d failed.\n", s.Processed, s.Failed)
		return
	}
	cliutil.Writef(w, "Processed %d collection(s).\n", s.Processed)
}

// prepareOutputDir creates dir when missing and reports the creation.
func prepareOutputDir(w io.Writer, quiet bool, dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	created, err := fileutil.EnsureDir(dir)
	if err != nil {
		return err
	}
	if created && !quiet {
		cliutil.Writef(w, "Created output directory: %s\n", dir)
	}
	return nil
}
