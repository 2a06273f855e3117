// Package commands provides the cobra command tree for postman2oas.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/internal/config"
	"github.com/erraggy/postman2oas/internal/logging"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// globalOptions holds the persistent flags and the state derived from them
// before any subcommand runs.
type globalOptions struct {
	logLevel string
	logFile  string
	quiet    bool

	cfg     *config.Config
	logger  *slog.Logger
	cleanup func() error
}

// NewRootCommand builds the postman2oas command tree. Environment
// configuration is read when a subcommand starts; flags override it.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "postman2oas",
		Short: "Convert Postman collections to OpenAPI 3.0",
		Long: "postman2oas converts Postman collections (v2.0/v2.1 JSON) into OpenAPI 3.0\n" +
			"documents. Folders become tags, requests become operations, and example\n" +
			"request and response bodies become inferred schemas.",
		Version:       postman2oas.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.cleanup != nil {
				return opts.cleanup()
			}
			return nil
		},
	}
	root.SetVersionTemplate("postman2oas v{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+config.EnvLogLevel+", default warn)")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to a rotated file instead of stderr (env "+config.EnvLogFile+")")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "quiet mode: only errors and requested output")

	root.AddCommand(
		newConvertCommand(opts),
		newInferCommand(opts),
		newMCPCommand(opts),
		newVersionCommand(),
	)
	return root
}

// setup loads the environment, applies flag overrides and builds the logger.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	o.cfg = config.Load()
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		o.cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-file") {
		o.cfg.LogFile = o.logFile
	}
	if o.quiet && !flags.Changed("log-level") {
		o.cfg.LogLevel = "error"
	}

	lc := logging.DefaultConfig()
	lc.Level = o.cfg.LogLevel
	lc.FilePath = o.cfg.LogFile
	lc.Writer = cmd.ErrOrStderr()
	logger, cleanup, err := logging.New(lc)
	if err != nil {
		return err
	}
	o.logger = logger
	o.cleanup = cleanup
	return nil
}
