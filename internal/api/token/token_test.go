package token

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/config"
	"github.com/matt-dz/cookbook/internal/env"
)

func TestSessionCookie(t *testing.T) {
	tests := []struct {
		name       string
		envName    string
		wantSecure bool
	}{
		{name: "dev", envName: config.EnvDev, wantSecure: false},
		{name: "prod", envName: config.EnvProd, wantSecure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := env.Null()
			e.Config.Env = tt.envName

			c := NewSessionCookie("sess-1", e)
			if c.Name != auth.SessionCookie || c.Value != "sess-1" {
				t.Errorf("unexpected cookie %s=%s", c.Name, c.Value)
			}
			if !c.HttpOnly || c.SameSite != http.SameSiteLaxMode {
				t.Error("expected an http-only lax cookie")
			}
			if c.Secure != tt.wantSecure {
				t.Errorf("expected Secure=%v, got %v", tt.wantSecure, c.Secure)
			}

			if expired := ExpiredSessionCookie(e); expired.MaxAge >= 0 || expired.Value != "" {
				t.Errorf("unexpected expired cookie %+v", expired)
			}
		})
	}
}

func TestSessionFromCtx(t *testing.T) {
	if s := SessionFromCtx(context.Background()); s.Status(time.Now()) != auth.StatusUnauthenticated {
		t.Error("expected anonymous session by default")
	}

	ctx := SessionWithCtx(context.Background(), auth.NewSession("", "abc", nil))
	if got := SessionFromCtx(ctx).SessionID; got != "abc" {
		t.Errorf("expected session abc, got %q", got)
	}
}
