// Package auth holds the caller's session with the recipe backend.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	cbhttp "github.com/matt-dz/cookbook/internal/http"
	"github.com/matt-dz/cookbook/internal/jwt"
	"github.com/matt-dz/cookbook/internal/user"
)

// SessionCookie is the cookie the backend uses for server side sessions.
const SessionCookie = "JSESSIONID"

var (
	ErrUnauthenticated = errors.New("not logged in")
	ErrExpired         = errors.New("session expired")
)

type Status int

const (
	StatusUnauthenticated Status = iota
	StatusAuthenticated
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusExpired:
		return "expired"
	default:
		return "unauthenticated"
	}
}

// Session is an explicit value passed to whatever needs credentials. It holds
// either a bearer token, a backend session id, or both.
type Session struct {
	Token     string     `json:"token,omitempty"`
	SessionID string     `json:"session_id,omitempty"`
	User      *user.User `json:"user,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	ExpiresAt time.Time  `json:"expires_at,omitzero"`
}

// Anonymous is the unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// NewSession builds a session from the credentials a login produced. The
// expiry of a JWT is read without verifying its signature since only the
// backend holds the key. Opaque tokens never expire on the client.
func NewSession(token, sessionID string, u *user.User) Session {
	s := Session{
		Token:     token,
		SessionID: sessionID,
		User:      u,
	}
	if token == "" {
		return s
	}

	claims, err := jwt.ReadUnverified(token)
	if err != nil {
		return s
	}
	s.Subject = claims.Subject
	s.ExpiresAt = claims.ExpiresAt
	return s
}

// FromRequest extracts the credentials a browser sent: a bearer token in the
// Authorization header and the backend session cookie.
func FromRequest(r *http.Request) Session {
	var token string
	if h := r.Header.Get("Authorization"); h != "" {
		if scheme, value, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(value)
		}
	}

	var sessionID string
	if c, err := r.Cookie(SessionCookie); err == nil {
		sessionID = c.Value
	}

	return NewSession(token, sessionID, nil)
}

func (s Session) Status(now time.Time) Status {
	if s.Token == "" && s.SessionID == "" {
		return StatusUnauthenticated
	}
	if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
		return StatusExpired
	}
	return StatusAuthenticated
}

// Require returns nil when the session is authenticated at now.
func (s Session) Require(now time.Time) error {
	switch s.Status(now) {
	case StatusAuthenticated:
		return nil
	case StatusExpired:
		return ErrExpired
	default:
		return ErrUnauthenticated
	}
}

// Credentials returns what to attach to backend requests. Sessions that are
// not authenticated at now contribute nothing.
func (s Session) Credentials(now time.Time) cbhttp.Credentials {
	if s.Status(now) != StatusAuthenticated {
		return cbhttp.Credentials{}
	}
	c := cbhttp.Credentials{Bearer: s.Token}
	if s.SessionID != "" {
		c.Cookies = []*http.Cookie{{Name: SessionCookie, Value: s.SessionID}}
	}
	return c
}

// WithUser returns a copy of s describing u.
func (s Session) WithUser(u *user.User) Session {
	s.User = u
	return s
}

// SessionIDFrom finds the backend session cookie among cookies.
func SessionIDFrom(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == SessionCookie {
			return c.Value
		}
	}
	return ""
}
