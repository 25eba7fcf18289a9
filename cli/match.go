package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/manager"
)

func (a *app) matchCommand() *cobra.Command {
	var (
		concurrency int
		metrics     bool
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Report the first matching recipe for every grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			book, grids, err := a.load(true)
			if err != nil {
				return err
			}
			var (
				reg  *prometheus.Registry
				opts []manager.Option
			)
			if metrics {
				reg = prometheus.NewRegistry()
				mt, err := manager.NewMetrics(reg)
				if err != nil {
					return err
				}
				opts = append(opts, manager.WithMetrics(mt))
			}
			m, err := a.manager(book, opts...)
			if err != nil {
				return err
			}

			names := grids.GridNames()
			gs := make([]*grid.Grid, len(names))
			for i, name := range names {
				if gs[i], err = grids.Grid(name); err != nil {
					return err
				}
			}
			results, err := m.MatchAll(cmd.Context(), gs, concurrency)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GRID\tRECIPE\tOUTPUT")
			for _, r := range results {
				if r.OK {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", names[r.Index], r.Match.ID, r.Match.Output)
					continue
				}
				fmt.Fprintf(tw, "%s\t-\t-\n", names[r.Index])
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if reg == nil {
				return nil
			}
			mfs, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range mfs {
				if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "grids resolved at once (0 = unlimited)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print match counters after the report")

	return cmd
}
