package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/plrefresh/internal/config"
	"github.com/alexisbeaulieu97/plrefresh/internal/store"
	"github.com/alexisbeaulieu97/plrefresh/internal/tui/feed"
)

var errNotTerminal = errors.New("standard output is not a terminal")

type demoOptions struct {
	footer string
	items  int
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open an interactive feed with a refresh header and a load-more footer",
		Long: `Open an interactive feed driven by the refresh controllers.

Drag with the mouse or scroll past the top to pull the header, scroll past
the end to load more. Press r to refresh, n to load more and ? for help.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.footer, "footer", "", "Footer kind: back, auto or plain")
	cmd.Flags().IntVar(&opts.items, "items", -1, "Items on the first page")

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags, opts *demoOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start demo", "output", errNotTerminal, "Run the demo from an interactive terminal.")
	}

	// the feed owns the screen; logs only go to a file
	app, err := loadApp(flags, io.Discard)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg := app.cfg
	if opts.footer != "" {
		cfg.Footer.Kind = opts.footer
	}
	if opts.items >= 0 {
		cfg.Demo.Items = opts.items
	}
	if err := config.Validate(cfg); err != nil {
		return newCommandError("start demo", "flags", err, "Use --footer back, auto or plain.")
	}

	st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return newCommandError("open last-updated store", cfg.Store.Backend, err, "Check store.path in your configuration.")
	}

	log := app.log.WithFields(map[string]any{"footer": cfg.Footer.Kind})
	log.Info("launching demo")

	m := feed.NewModel(feed.Options{
		Config: cfg,
		Store:  st,
		Logger: app.log.Component("feed"),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}

	log.Info("demo closed")
	return nil
}
