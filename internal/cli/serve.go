package cli

import (
	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the listing API and Swagger UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.Start(cmd.Context(), a.env)
		},
	}
}
