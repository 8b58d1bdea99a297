// Package middleware contains middleware functions for the API
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v3"

	apiError "github.com/matt-dz/cookbook/internal/api/error"
	"github.com/matt-dz/cookbook/internal/api/token"
	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/requestid"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		Level:         slog.LevelInfo,
		Schema:        httplog.SchemaECS,
		RecoverPanics: true,
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != "" {
				return []slog.Attr{slog.String("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID tags the request with a ULID, reusing the caller's id when one
// was sent. The id is echoed back and forwarded to the recipe backend.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestid.Header)
		if requestID == "" || len(requestID) > 64 {
			requestID = requestid.New()
		}
		w.Header().Set(requestid.Header, requestID)
		r = r.WithContext(log.AppendCtx(r.Context(), slog.String("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors adds the necessary CORS headers to the response.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		configured := e.Config.Server.AllowedOrigin

		// Determine allowed origin based on the incoming Origin header
		var allowedOrigin string
		if e.Config.IsProd() {
			allowedOrigin = configured
		} else if origin != "" {
			// In dev mode, allow all origins
			allowedOrigin = origin
		}

		if allowedOrigin == "" && configured != "" {
			allowedOrigin = configured
		}

		if allowedOrigin == "" && origin != "" {
			e.Logger.WarnContext(r.Context(),
				"allowed origin not configured; Access-Control-Allow-Origin will be empty")
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+requestid.Header)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoadSession reads the caller's credentials into the request context. It
// never rejects a request.
func LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := auth.FromRequest(r)
		if session.Subject != "" {
			r = r.WithContext(log.AppendCtx(r.Context(), slog.String("user-id", session.Subject)))
		}
		next.ServeHTTP(w, r.WithContext(token.SessionWithCtx(r.Context(), session)))
	})
}

// RequireSession rejects requests whose session is missing or expired.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		e := env.EnvFromCtx(ctx)
		requestID := requestid.ExtractRequestID(ctx)

		err := token.SessionFromCtx(ctx).Require(time.Now())
		if err == nil {
			next.ServeHTTP(w, r)
			return
		}

		e.Logger.DebugContext(ctx, "rejecting request without session", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
	})
}
