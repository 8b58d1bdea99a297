package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/category"
	"github.com/matt-dz/cookbook/internal/recipe"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [axis]",
		Short: "List recipe categories",
		Long:  "List the categories of one axis (type, situation, ingredient, method) or of all four.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axes := recipe.Axes()
			if len(args) == 1 {
				axis, err := recipe.ParseAxis(args[0])
				if err != nil {
					return err
				}
				axes = []recipe.Axis{axis}
			}

			set, loadErr := a.env.Categories(a.session()).Load(cmd.Context())
			out := cmd.OutOrStdout()
			if a.flagJSON {
				selected := make(category.Set, len(axes))
				for _, axis := range axes {
					selected[axis] = set.Of(axis)
				}
				if err := printJSON(out, selected); err != nil {
					return err
				}
				return loadErr
			}

			for _, axis := range axes {
				fmt.Fprintf(out, "%s\n", axis.Label())
				list := set.Of(axis)
				if len(list) == 0 {
					fmt.Fprintln(out, "  (none)")
					continue
				}
				for _, c := range list {
					fmt.Fprintf(out, "  %-6d %s\n", c.ID, c.Name)
				}
			}
			return loadErr
		},
	}
}
