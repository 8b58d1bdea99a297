// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/category"
	"github.com/matt-dz/cookbook/internal/client"
	"github.com/matt-dz/cookbook/internal/config"
	cbhttp "github.com/matt-dz/cookbook/internal/http"
	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/usecase"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger   *slog.Logger
	Config   config.Config
	HTTP     *cbhttp.HTTP
	Sessions *auth.Store
}

// New wires the backend transport described by conf.
func New(conf config.Config, logger *slog.Logger) *Env {
	if logger == nil {
		logger = log.NullLogger()
	}

	doer := cbhttp.DefaultConfig(cbhttp.Options{
		Timeout:  conf.HTTP.Timeout,
		RetryMax: conf.HTTP.RetryMax,
		Logger:   logger,
	})

	return &Env{
		Logger:   logger,
		Config:   conf,
		HTTP:     cbhttp.New(doer, conf.APIBaseURL, logger),
		Sessions: auth.NewStore(conf.Session.Path),
	}
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

// Client returns a backend client carrying the credentials of s.
func (e *Env) Client(s auth.Session) *client.Client {
	return client.New(e.HTTP).WithSession(s)
}

// Service returns the use cases acting on behalf of s.
func (e *Env) Service(s auth.Session) *usecase.Service {
	return usecase.New(e.Client(s), e.Logger)
}

// Categories returns a loader for the four category axes.
func (e *Env) Categories(s auth.Session) *category.Loader {
	return category.NewLoader(e.Client(s), e.Logger)
}

func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx returns the Env stored in ctx, or a null Env.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok && e != nil {
		return e
	}
	return Null()
}
