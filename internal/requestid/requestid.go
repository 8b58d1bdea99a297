// Package requestid contains utilities for handling the request id.
package requestid

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Header carries the request id between the browser, this server and the
// recipe backend.
const Header = "X-Request-ID"

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// New returns a fresh request id.
func New() string {
	return ulid.Make().String()
}

// InjectRequestID injects a given requestID into a context.
func InjectRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID extracts a requestID from a context if it exists.
// If none is found, then an empty string is returned.
func ExtractRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
