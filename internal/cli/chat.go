package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/client"
)

func newChatCmd(a *app) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat <question>...",
		Short: "Ask the cooking assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.ChatRequest{Question: strings.Join(args, " ")}
			if sessionID != "" {
				req.SessionID = &sessionID
			}

			resp, err := a.service().Chat(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.flagJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Conversation id to continue")
	return cmd
}
