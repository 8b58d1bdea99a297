// Package token carries the caller's backend session through a request.
package token

import (
	"context"
	"net/http"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/env"
)

const sessionCookieLifetime = 60 * 60 * 24 * 7 // 7 days

type sessionKeyType struct{}

var sessionKey sessionKeyType

// NewSessionCookie mirrors the backend session id onto the browser.
func NewSessionCookie(sessionID string, env *env.Env) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   sessionCookieLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   env.Config.IsProd(),
	}
}

func ExpiredSessionCookie(env *env.Env) *http.Cookie {
	c := NewSessionCookie("", env)
	c.MaxAge = -1
	return c
}

func SessionWithCtx(ctx context.Context, s auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx returns the session stored in ctx, or the anonymous one.
func SessionFromCtx(ctx context.Context) auth.Session {
	if s, ok := ctx.Value(sessionKey).(auth.Session); ok {
		return s
	}
	return auth.Anonymous()
}
