package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/user"
)

// prompt reads one line from in after printing label.
func prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSuffix(label, ": "), err)
	}
	return strings.TrimSpace(line), nil
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := prompt(cmd, "Password: ")
				if err != nil {
					return err
				}
				password = p
			}

			session, err := a.env.Service(auth.Anonymous()).Login(cmd.Context(),
				user.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			if err := a.env.Sessions.Save(session); err != nil {
				return err
			}

			name := email
			if session.User != nil && session.User.Name != "" {
				name = session.User.Name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.service().Logout(cmd.Context(), a.env.Sessions); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.requireSession()
			if err != nil {
				return err
			}
			me, err := a.env.Service(session).Me(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flagJSON {
				return printJSON(out, me)
			}
			fmt.Fprintf(out, "%s <%s> (%s)\n", me.Name, me.Email, me.Role)
			if !me.IsEmailVerified {
				fmt.Fprintln(out, "Email not verified yet.")
			}
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var req user.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				p, err := prompt(cmd, "Password: ")
				if err != nil {
					return err
				}
				req.Password = p
			}

			resp, err := a.env.Service(auth.Anonymous()).Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.flagJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			msg := resp.Message
			if msg == "" {
				msg = "Account created."
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			if resp.VerificationEmailSent {
				fmt.Fprintf(cmd.OutOrStdout(), "A verification email was sent to %s.\n", req.Email)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newVerifyEmailCmd(a *app) *cobra.Command {
	var (
		req    user.VerifyEmailRequest
		resend bool
	)

	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Confirm an email address or resend the verification mail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.env.Service(auth.Anonymous())
			out := cmd.OutOrStdout()

			if resend {
				msg, err := svc.ResendVerification(cmd.Context(), user.EmailRequest{Email: req.Email})
				if err != nil {
					return err
				}
				if msg == "" {
					msg = "Verification email sent."
				}
				fmt.Fprintln(out, msg)
				return nil
			}

			if err := svc.VerifyEmail(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(out, "Email verified.")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Token, "token", "", "Token from the verification mail")
	cmd.Flags().BoolVar(&resend, "resend", false, "Send a new verification mail instead")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
