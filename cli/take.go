package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/craftgrid/item"
	"github.com/katalvlaran/craftgrid/recipefile"
)

// ErrNotTaken is returned when no recipe reconciles the taken result.
var ErrNotTaken = errors.New("cli: taken result does not reconcile with the grid")

func (a *app) takeCommand() *cobra.Command {
	var name, taken string
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Consume ingredients for a taken result and print the remaining grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stack, err := item.ParseStack(taken)
			if err != nil {
				return err
			}
			book, grids, err := a.load(true)
			if err != nil {
				return err
			}
			g, err := grids.Grid(name)
			if err != nil {
				return err
			}
			m, err := a.manager(book)
			if err != nil {
				return err
			}
			next, match, ok := m.Take(g, stack, book.ContainerFunc())
			if !ok {
				return fmt.Errorf("grid %q, taken %s: %w", name, stack, ErrNotTaken)
			}
			a.log.Info("took", "grid", name, "recipe", match.ID)

			return recipefile.EncodeGrid(cmd.OutOrStdout(), name, next)
		},
	}
	cmd.Flags().StringVar(&name, "grid", "", "grid name")
	cmd.Flags().StringVar(&taken, "taken", "", "taken result, kind[:quantity]")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("taken")

	return cmd
}
