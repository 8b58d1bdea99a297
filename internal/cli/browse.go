package cli

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/tui"
)

func newBrowseCmd(a *app) *cobra.Command {
	var flags criteriaFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse recipes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			criteria, err := flags.criteria(cmd, a.env.Config.PageSize)
			if err != nil {
				return err
			}

			session := a.session()
			categories, catErr := a.env.Categories(session).Load(ctx)
			if catErr != nil {
				a.env.Logger.WarnContext(ctx, "browsing with partial categories", slog.Any("error", catErr))
			}

			model := tui.New(ctx, a.env.Client(session), criteria,
				tui.WithLogger(a.env.Logger),
				tui.WithCategories(categories, catErr))

			_, err = tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			model.Controller().Wait()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
