// Package client wraps the recipe backend's REST endpoints.
package client

import (
	"errors"
	"net/http"
	"time"

	"github.com/matt-dz/cookbook/internal/auth"
	cbhttp "github.com/matt-dz/cookbook/internal/http"
)

var ErrNotFound = errors.New("not found")

type Client struct {
	http *cbhttp.HTTP
	now  func() time.Time
}

func New(h *cbhttp.HTTP) *Client {
	return &Client{http: h, now: time.Now}
}

// WithSession returns a copy of c that sends the credentials of s. Sessions
// that are unauthenticated or expired make anonymous requests.
func (c *Client) WithSession(s auth.Session) *Client {
	cp := *c
	cp.http = c.http.WithCredentials(s.Credentials(c.now()))
	return &cp
}

// notFound maps a 404 to ErrNotFound and passes other errors through.
func notFound(err error) error {
	if cbhttp.IsStatus(err, http.StatusNotFound) {
		return errors.Join(ErrNotFound, err)
	}
	return err
}
