// Package cli implements the cookbook command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/config"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/usecase"
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	flagAPI      string
	flagLogLevel string
	flagJSON     bool

	env     *env.Env
	logFile io.Closer
}

// NewRootCmd creates the root cobra command for the cookbook CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cookbook",
		Short: "Browse recipes and manage carts and meal plans",
		Long: "cookbook talks to the recipe backend: browse and filter recipes, keep a " +
			"shopping cart and meal plans, or serve the listing API to browsers.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logFile != nil {
				_ = a.logFile.Close()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.flagAPI, "api", "", "Recipe backend base URL (overrides API_BASE_URL)")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.flagJSON, "json", false, "Print results as JSON")

	root.AddCommand(
		newServeCmd(a),
		newBrowseCmd(a),
		newRecipesCmd(a),
		newCategoriesCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newRegisterCmd(a),
		newVerifyEmailCmd(a),
		newCartCmd(a),
		newMealPlansCmd(a),
		newChatCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	conf, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.flagAPI != "" {
		conf.APIBaseURL = strings.TrimRight(a.flagAPI, "/")
	}
	if a.flagLogLevel != "" {
		conf.Log.Level = a.flagLogLevel
	}

	level, err := log.ParseLevel(conf.Log.Level)
	if err != nil {
		return err
	}

	logger, err := a.newLogger(cmd, conf, level)
	if err != nil {
		return err
	}

	a.env = env.New(conf, logger)
	return nil
}

// newLogger writes to the configured log file when there is one. The browser
// owns the terminal, so without a log file it logs nowhere.
func (a *app) newLogger(cmd *cobra.Command, conf config.Config, level slog.Level) (*slog.Logger, error) {
	options := &slog.HandlerOptions{Level: level}

	if conf.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(conf.Log.File), 0o700); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(conf.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		return log.NewWithWriter(f, options), nil
	}

	if cmd.Name() == "browse" {
		return log.NullLogger(), nil
	}
	return log.NewWithWriter(cmd.ErrOrStderr(), options), nil
}

// session is the stored login, or the anonymous session when there is none.
func (a *app) session() auth.Session {
	s, err := a.env.Sessions.Load()
	if err != nil {
		a.env.Logger.Warn("ignoring unreadable session", slog.Any("error", err))
		return auth.Anonymous()
	}
	return s
}

func (a *app) service() *usecase.Service {
	return a.env.Service(a.session())
}

// requireSession returns the stored session when it is still usable.
func (a *app) requireSession() (auth.Session, error) {
	s := a.session()
	if err := s.Require(time.Now()); err != nil {
		if errors.Is(err, auth.ErrExpired) {
			return s, errors.New("session expired, run `cookbook login` again")
		}
		return s, errors.New("not logged in, run `cookbook login` first")
	}
	return s, nil
}

// loggedIn returns the service for the stored session and the caller's user
// id, which cart and meal plan endpoints are addressed by.
func (a *app) loggedIn(ctx context.Context) (*usecase.Service, int64, error) {
	s, err := a.requireSession()
	if err != nil {
		return nil, 0, err
	}

	svc := a.env.Service(s)
	me, err := svc.Me(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving current user: %w", err)
	}
	return svc, me.ID, nil
}
