package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/user"
)

const usersPath = "/users/v1"

// Login authenticates and returns the resulting session. Backends that answer
// with a token and backends that set a session cookie are both supported.
func (c *Client) Login(ctx context.Context, req user.LoginRequest) (auth.Session, error) {
	var resp user.AuthResponse
	cookies, err := c.http.SendJSONCookies(ctx, http.MethodPost, usersPath+"/login", nil, req, &resp)
	if err != nil {
		return auth.Anonymous(), fmt.Errorf("logging in: %w", err)
	}

	session := auth.NewSession(resp.BearerToken(), auth.SessionIDFrom(cookies), resp.User)
	if session.Status(c.now()) != auth.StatusAuthenticated {
		return auth.Anonymous(), fmt.Errorf("logging in: %w", auth.ErrUnauthenticated)
	}
	return session, nil
}

func (c *Client) Register(ctx context.Context, req user.RegisterRequest) (user.RegisterResponse, error) {
	var resp user.RegisterResponse
	if err := c.http.SendJSON(ctx, http.MethodPost, usersPath+"/register", nil, req, &resp); err != nil {
		return user.RegisterResponse{}, fmt.Errorf("registering: %w", err)
	}
	return resp, nil
}

// EmailExists reports whether an account already uses email.
func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	var resp user.EmailAvailability
	err := c.http.SendJSON(ctx, http.MethodPost, usersPath+"/check-email", nil, user.EmailRequest{Email: email}, &resp)
	if err != nil {
		return false, fmt.Errorf("checking email: %w", err)
	}
	return !resp.IsAvailable, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.http.SendJSON(ctx, http.MethodPost, usersPath+"/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return nil
}

func (c *Client) Me(ctx context.Context) (user.User, error) {
	var u user.User
	if err := c.http.GetJSON(ctx, usersPath+"/me", nil, &u); err != nil {
		return user.User{}, fmt.Errorf("getting current user: %w", err)
	}
	return u, nil
}

func (c *Client) VerifyEmail(ctx context.Context, req user.VerifyEmailRequest) error {
	q := url.Values{"token": {req.Token}, "email": {req.Email}}
	if err := c.http.GetJSON(ctx, usersPath+"/verify-email", q, &struct{}{}); err != nil {
		return fmt.Errorf("verifying email: %w", err)
	}
	return nil
}

func (c *Client) ResendVerification(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := c.http.SendJSON(ctx, http.MethodPost, usersPath+"/resend-verification", nil, user.EmailRequest{Email: email}, &resp)
	if err != nil {
		return "", fmt.Errorf("resending verification: %w", err)
	}
	return resp.Message, nil
}
