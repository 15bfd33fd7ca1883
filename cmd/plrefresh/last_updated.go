package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/plrefresh/internal/store"
)

func newLastUpdatedCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "last-updated [key]",
		Short: "List the persisted header refresh times",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			st, err := store.Open(app.cfg.Store.Backend, app.cfg.Store.Path)
			if err != nil {
				return newCommandError("open last-updated store", app.cfg.Store.Backend, err,
					"Check store.path in your configuration.")
			}
			if st == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Persistence is disabled (store backend \"none\").")
				return nil
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				at, ok := st.LastUpdated(args[0])
				if !ok {
					fmt.Fprintf(out, "%s: never\n", args[0])
					return nil
				}
				fmt.Fprintf(out, "%s: %s\n", args[0], at.Format(time.RFC3339))
				return nil
			}

			entries := st.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No refresh times recorded yet.")
				return nil
			}
			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "KEY\tUPDATED")
			for _, e := range entries {
				fmt.Fprintf(writer, "%s\t%s\n", e.Key, e.At.Format(time.RFC3339))
			}
			return writer.Flush()
		},
	}
}
