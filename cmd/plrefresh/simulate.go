package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/plrefresh/internal/sim"
	"github.com/alexisbeaulieu97/plrefresh/internal/store"
	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

type simulateOptions struct {
	edge     string
	steps    string
	viewport float64
	content  float64
	extent   float64
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a gesture script against one controller and print each state",
		Long: `Replay a comma separated gesture script against a controller attached to an
in-memory scroll view.

Ops: drag:N, release, scroll:N, begin, end, nomore, reset, grow:N, hide, show.
Distances are measured along the edge's scroll axis.`,
		Example: `  plrefresh simulate --edge header --steps "drag:-30,drag:-40,release,end"
  plrefresh simulate --edge auto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.edge, "edge", string(sim.EdgeHeader), "Controller: "+edgeNames())
	cmd.Flags().StringVar(&opts.steps, "steps", "", "Gesture script; defaults to a representative session for the edge")
	cmd.Flags().Float64Var(&opts.viewport, "viewport", sim.DefaultViewport, "Viewport length along the scroll axis")
	cmd.Flags().Float64Var(&opts.content, "content", sim.DefaultContent, "Content length along the scroll axis")
	cmd.Flags().Float64Var(&opts.extent, "extent", 0, "Accessory height or width; 0 keeps the controller default")

	return cmd
}

func edgeNames() string {
	names := make([]string, len(sim.Edges))
	for i, e := range sim.Edges {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

func runSimulate(cmd *cobra.Command, flags *rootFlags, opts *simulateOptions) error {
	app, err := loadApp(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	edge := sim.Edge(strings.ToLower(opts.edge))
	script := opts.steps
	if script == "" {
		var ok bool
		if script, ok = sim.DefaultScripts[edge]; !ok {
			return newCommandError("simulate", opts.edge, fmt.Errorf("unknown edge"), "Use one of: "+edgeNames()+".")
		}
	}

	steps, err := sim.ParseScript(script)
	if err != nil {
		return newCommandError("simulate", "parsing --steps", err, "Separate steps with commas, e.g. drag:-30,release.")
	}

	records, err := sim.Run(sim.Options{
		Edge:     edge,
		Viewport: opts.viewport,
		Content:  opts.content,
		Extent:   opts.extent,
		Store:    store.NewMemoryStore(),
		Logger:   app.log.Component("simulate." + string(edge)),
	}, steps)
	// partial output still shows how far the script got
	if renderErr := renderRecords(cmd.OutOrStdout(), records); renderErr != nil {
		return renderErr
	}
	if err != nil {
		return newCommandError("simulate", opts.edge, err, "Check that every op applies to the chosen edge.")
	}
	return nil
}

func renderRecords(w io.Writer, records []sim.Record) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "STEP\tSTATE\tOFFSET\tINSET\tPERCENT\tCALLBACKS\tTRANSITIONS")

	for _, r := range records {
		fmt.Fprintf(writer, "%s\t%s\t%g\t%g\t%.2f\t%d\t%s\n",
			r.Step,
			stateLabel(r.State),
			r.Offset,
			r.Inset,
			r.Percent,
			r.Callbacks,
			formatTransitions(r.Transitions),
		)
	}

	return writer.Flush()
}

func stateLabel(state refresh.State) string {
	return cases.Title(language.English, cases.NoLower).String(state.String())
}

func formatTransitions(transitions []sim.Transition) string {
	if len(transitions) == 0 {
		return "-"
	}
	parts := make([]string, len(transitions))
	for i, t := range transitions {
		parts[i] = fmt.Sprintf("%s→%s", t.From, t.To)
	}
	return strings.Join(parts, ", ")
}
