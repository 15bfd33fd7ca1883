package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/plrefresh/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create configuration files",
	}

	cmd.AddCommand(newConfigValidateCmd(flags))
	cmd.AddCommand(newConfigShowCmd(flags))
	cmd.AddCommand(newConfigDiffCmd(flags))
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := config.Load(path); err != nil {
				return newCommandError("validate configuration", describeConfigPath(path), err,
					"Fix the reported field or run 'plrefresh config diff' to compare with the defaults.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", describeConfigPath(path))
			return nil
		},
	}
}

func newConfigShowCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return newCommandError("load configuration", describeConfigPath(flags.configPath), err,
					"Run 'plrefresh config validate' for details.")
			}
			data, err := config.Render(cfg, f)
			if err != nil {
				return fmt.Errorf("render configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatYAML), "Output format: yaml or toml")

	return cmd
}

func newConfigDiffCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how the effective configuration differs from the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return newCommandError("load configuration", describeConfigPath(flags.configPath), err,
					"Run 'plrefresh config validate' for details.")
			}
			out, err := config.DiffFromDefaults(cfg, describeConfigPath(flags.configPath))
			if err != nil {
				return fmt.Errorf("render configuration: %w", err)
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes from the defaults.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Write the default configuration to path, or to config.yaml (config.toml with
--format toml) in the per-user configuration directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				dir, err := config.Dir()
				if err != nil {
					return newCommandError("init configuration", "resolving the configuration directory", err,
						"Set XDG_CONFIG_HOME or HOME, or pass a path.")
				}
				path = filepath.Join(dir, "config."+string(f))
			}

			if _, err := os.Stat(path); err == nil && !force {
				return newCommandError("init configuration", path, os.ErrExist, "Pass --force to overwrite it.")
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return newCommandError("init configuration", path, err, "Check the file permissions.")
			}

			if err := config.Save(config.Default(), path); err != nil {
				return newCommandError("init configuration", path, err, "Use a .yaml, .yml or .toml file name.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatYAML), "Format when no path is given: yaml or toml")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func parseFormat(name string) (config.Format, error) {
	switch f := config.Format(name); f {
	case config.FormatYAML, config.FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q: want yaml or toml", name)
}
