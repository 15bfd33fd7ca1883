package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/plrefresh/internal/config"
	"github.com/alexisbeaulieu97/plrefresh/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "plrefresh",
		Short:         "Pull-to-refresh and load-more controllers for scrollable views",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand: open the interactive feed
			if len(args) == 0 {
				return runDemo(cmd, flags, &demoOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file (YAML or TOML)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newLastUpdatedCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// appContext bundles what every command loads at startup.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

// loadApp reads the configuration and builds a logger writing to w unless a
// log file is configured.
func loadApp(flags *rootFlags, w io.Writer) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", describeConfigPath(flags.configPath), err,
			"Run 'plrefresh config validate' for details or 'plrefresh config init' to start from the defaults.")
	}

	opts := logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        w,
		File:          cfg.Log.File,
	}
	if flags.verbose {
		opts.Level = "debug"
	}
	if flags.logFile != "" {
		opts.File = flags.logFile
	}

	log, err := logger.New(opts)
	if err != nil {
		return nil, newCommandError("create logger", opts.File, err, "Check that the log file is writable.")
	}
	return &appContext{cfg: cfg, log: log}, nil
}

func (a *appContext) Close() error {
	return a.log.Close()
}

func describeConfigPath(path string) string {
	if path != "" {
		return path
	}
	if discovered := config.Discover(); discovered != "" {
		return discovered
	}
	return "defaults"
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error { return e.cause }
