// Package log provides a context-aware logging utility using slog.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type slogFieldKey struct{}

var slogFields slogFieldKey

// ContextHandler is a struct for the context handler.
type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before
// calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// copy so sibling contexts never share a backing array
		attrs := make([]slog.Attr, 0, len(v)+1)
		attrs = append(attrs, v...)
		attrs = append(attrs, attr)
		return context.WithValue(parent, slogFields, attrs)
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return level, nil
}

type nullWriter struct {
	io.Writer
}

func (nullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func New(options *slog.HandlerOptions) *slog.Logger {
	return NewWithWriter(os.Stderr, options)
}

// NewWithWriter is New with a custom destination. The terminal browser logs to
// a file because stderr is the screen.
func NewWithWriter(w io.Writer, options *slog.HandlerOptions) *slog.Logger {
	if options == nil {
		options = &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}
	}

	return slog.New(&ContextHandler{
		Handler: slog.NewJSONHandler(
			w,
			options,
		),
	})
}

func NullLogger() *slog.Logger {
	return slog.New(&ContextHandler{
		Handler: slog.NewJSONHandler(
			nullWriter{},
			&slog.HandlerOptions{},
		),
	})
}
