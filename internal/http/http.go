// Package http provides a wrapper around the retryablehttp.Client
// for talking JSON to the recipe backend.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/requestid"
)

const (
	maxErrorBody    = 64 << 10
	maxPlainMessage = 200
)

type HTTPDoer interface {
	Do(*retryablehttp.Request) (*http.Response, error)
}

var _ HTTPDoer = (*retryablehttp.Client)(nil)

// TransportError means the request never produced a response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a response outside the 2xx range. Message comes from the
// response body when the backend supplied one.
type StatusError struct {
	Method  string
	URL     string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Message)
}

// IsStatus reports whether err is a StatusError with the given status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

type noRetryKey struct{}

// checkRetry retries only requests that were not marked as unsafe to repeat.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if v, _ := ctx.Value(noRetryKey{}).(bool); v {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

type Options struct {
	Timeout  time.Duration
	RetryMax int
	Logger   *slog.Logger
}

// DefaultConfig builds the retryablehttp client used against the backend.
// The final response is handed back to the caller instead of being turned
// into a "giving up" error so status handling stays in one place.
func DefaultConfig(opts Options) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = max(opts.RetryMax, 0)
	client.CheckRetry = checkRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}
	if opts.Logger != nil {
		client.Logger = opts.Logger
	} else {
		client.Logger = nil
	}
	return client
}

// Credentials authenticate requests to the backend.
type Credentials struct {
	Bearer  string
	Cookies []*http.Cookie
}

func (c Credentials) Empty() bool {
	return c.Bearer == "" && len(c.Cookies) == 0
}

type HTTP struct {
	doer    HTTPDoer
	baseURL string
	logger  *slog.Logger
	creds   Credentials
}

func New(doer HTTPDoer, baseURL string, logger *slog.Logger) *HTTP {
	if logger == nil {
		logger = log.NullLogger()
	}
	return &HTTP{
		doer:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// WithCredentials returns a copy of h that authenticates every request with
// creds. Empty credentials give an anonymous copy.
func (h *HTTP) WithCredentials(creds Credentials) *HTTP {
	c := *h
	c.creds = creds
	return &c
}

// URL joins path and query onto the base URL.
func (h *HTTP) URL(path string, query url.Values) string {
	u := h.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// NewRequest builds a request whose body, if any, is encoded as JSON.
// Requests other than GET are never retried.
func (h *HTTP) NewRequest(
	ctx context.Context, method, path string, query url.Values, body any,
) (*retryablehttp.Request, error) {
	if method != http.MethodGet {
		ctx = context.WithValue(ctx, noRetryKey{}, true)
	}

	var payload any
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		payload = data
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, h.URL(path, query), payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.creds.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+h.creds.Bearer)
	}
	for _, c := range h.creds.Cookies {
		req.AddCookie(c)
	}

	id := requestid.ExtractRequestID(ctx)
	if id == "" {
		id = requestid.New()
	}
	req.Header.Set(requestid.Header, id)

	return req, nil
}

// Do sends req and returns the response when its status is 2xx. The caller
// must close the body.
func (h *HTTP) Do(req *retryablehttp.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	resp, err := h.doer.Do(req)
	if err != nil {
		h.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("request_id", req.Header.Get(requestid.Header)),
			slog.Any("error", err))
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	h.logger.DebugContext(ctx, "request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("request_id", req.Header.Get(requestid.Header)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if err := ExpectStatus2xx(req.Method, req.URL.String(), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetRaw performs a GET and returns the undecoded body.
func (h *HTTP) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := h.NewRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: fmt.Errorf("reading body: %w", err)}
	}
	return data, nil
}

// GetJSON performs a GET and decodes the body into dst.
func (h *HTTP) GetJSON(ctx context.Context, path string, query url.Values, dst any) error {
	return h.SendJSON(ctx, http.MethodGet, path, query, nil, dst)
}

// SendJSON sends body as JSON and decodes the response into dst. A nil dst
// discards the response body.
func (h *HTTP) SendJSON(ctx context.Context, method, path string, query url.Values, body, dst any) error {
	_, err := h.SendJSONCookies(ctx, method, path, query, body, dst)
	return err
}

// SendJSONCookies is SendJSON that also returns the cookies the response set.
func (h *HTTP) SendJSONCookies(
	ctx context.Context, method, path string, query url.Values, body, dst any,
) ([]*http.Cookie, error) {
	req, err := h.NewRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	resp, err := h.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	cookies := resp.Cookies()
	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return cookies, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return cookies, fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return cookies, nil
}

// ExpectStatus2xx converts a non-2xx response into a StatusError and closes
// its body.
func ExpectStatus2xx(method, rawURL string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	return &StatusError{
		Method:  method,
		URL:     rawURL,
		Status:  resp.StatusCode,
		Message: errorMessage(resp.StatusCode, body),
	}
}

// errorMessage pulls a human readable message out of an error body.
func errorMessage(status int, body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") && len(text) <= maxPlainMessage {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}
