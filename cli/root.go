// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/craftgrid/manager"
	"github.com/katalvlaran/craftgrid/recipefile"
)

// ErrNoRecipes is returned by commands that need --recipes when it is unset.
var ErrNoRecipes = errors.New("cli: --recipes is required")

// app carries the state shared by all subcommands.
type app struct {
	logLevel string
	recipes  string
	grids    string
	log      *slog.Logger
}

// NewRootCommand builds the craftgrid command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "craftgrid",
		Short:         "Resolve shaped crafting recipes against item grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("cli: --log-level %q: %w", a.logLevel, err)
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&a.recipes, "recipes", "", "recipe book (YAML)")
	pf.StringVar(&a.grids, "grids", "", "grid file (YAML)")

	root.AddCommand(a.matchCommand(), a.takeCommand(), a.removeCommand())

	return root
}

// Execute runs the root command against os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "craftgrid:", err)
		os.Exit(1)
	}
}

// load reads the grid file and, when needRecipes is set, the recipe book.
func (a *app) load(needRecipes bool) (recipes, grids *recipefile.Book, err error) {
	if a.grids == "" {
		return nil, nil, errors.New("cli: --grids is required")
	}
	if grids, err = recipefile.LoadFile(a.grids); err != nil {
		return nil, nil, err
	}
	if !needRecipes {
		return nil, grids, nil
	}
	if a.recipes == "" {
		return nil, nil, ErrNoRecipes
	}
	if recipes, err = recipefile.LoadFile(a.recipes); err != nil {
		return nil, nil, err
	}
	a.log.Debug("loaded", "recipes", len(recipes.Recipes), "grids", len(grids.Grids))

	return recipes, grids, nil
}

// manager registers every recipe of book on a new manager.
func (a *app) manager(book *recipefile.Book, opts ...manager.Option) (*manager.Manager, error) {
	m := manager.New(append([]manager.Option{manager.WithLogger(a.log)}, opts...)...)
	if err := book.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}
