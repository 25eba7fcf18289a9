package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/craftgrid/item"
	"github.com/katalvlaran/craftgrid/recipefile"
)

func (a *app) removeCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "remove STACK...",
		Short: "Remove stacks from a grid, printing leftovers and the remaining grid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make([]item.Stack, len(args))
			for i, arg := range args {
				s, err := item.ParseStack(arg)
				if err != nil {
					return err
				}
				targets[i] = s
			}
			_, grids, err := a.load(false)
			if err != nil {
				return err
			}
			g, err := grids.Grid(name)
			if err != nil {
				return err
			}

			left, next := g.RemoveStacks(targets...)
			out := cmd.OutOrStdout()
			for _, s := range left {
				if !s.IsEmpty() {
					fmt.Fprintf(out, "# leftover %s\n", s)
				}
			}
			a.log.Debug("removed", "grid", name, "targets", len(targets))

			return recipefile.EncodeGrid(out, name, next)
		},
	}
	cmd.Flags().StringVar(&name, "grid", "", "grid name")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}
