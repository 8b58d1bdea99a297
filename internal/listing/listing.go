// Package listing keeps the recipe filter criteria and the page of recipes
// fetched for them.
package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/matt-dz/cookbook/internal/filter"
	cbhttp "github.com/matt-dz/cookbook/internal/http"
	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/page"
	"github.com/matt-dz/cookbook/internal/recipe"
)

//go:generate mockgen -source=listing.go -destination=mock_fetcher.go -package=listing

// Fetcher returns one undecoded listing response for criteria.
type Fetcher interface {
	ListRecipesRaw(ctx context.Context, criteria filter.Criteria) ([]byte, error)
}

// FetchError is the single error a failed fetch publishes.
type FetchError struct {
	Criteria filter.Criteria
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching recipes: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Message turns a fetch error into text suitable for display.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *cbhttp.StatusError
	var transportErr *cbhttp.TransportError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Message
	case errors.As(err, &transportErr):
		return "Could not reach the recipe service."
	case errors.Is(err, page.ErrUnrecognizedShape):
		return "The recipe service sent an unexpected response."
	}
	return "Failed to load recipes."
}

// Fetch requests one page for criteria and normalizes it. The returned page
// is always usable, even alongside an error.
func Fetch(ctx context.Context, f Fetcher, criteria filter.Criteria) (page.Page[recipe.Recipe], error) {
	raw, err := f.ListRecipesRaw(ctx, criteria)
	if err != nil {
		return page.Empty[recipe.Recipe](criteria), &FetchError{Criteria: criteria, Err: err}
	}
	p, err := page.Normalize[recipe.Recipe](raw, criteria)
	if err != nil {
		return p, &FetchError{Criteria: criteria, Err: err}
	}
	return p, nil
}

// State is what the controller publishes after every change. Version grows
// with each publication so consumers can drop states delivered out of order.
type State struct {
	Version    uint64
	Criteria   filter.Criteria
	Content    []recipe.Recipe
	Pagination page.Metadata
	Loading    bool
	Err        error
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithOnChange registers fn to receive every published State. fn may run on
// any goroutine and must not block for long.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller is the filter state manager and fetch coordinator. Every
// operation that changes the criteria starts exactly one fetch. Responses to
// fetches that are no longer the latest issued are discarded.
type Controller struct {
	fetcher  Fetcher
	logger   *slog.Logger
	onChange func(State)

	mu       sync.Mutex
	criteria filter.Criteria
	state    State
	seq      uint64
	version  uint64
	inflight sync.WaitGroup
}

// New creates a controller holding initial. No fetch is made until the
// first operation.
func New(fetcher Fetcher, initial filter.Criteria, opts ...Option) *Controller {
	if initial.Size <= 0 {
		initial.Size = filter.DefaultSize
	}
	c := &Controller{
		fetcher:  fetcher,
		logger:   log.NullLogger(),
		criteria: initial.Clone(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = State{
		Criteria:   c.criteria.Clone(),
		Content:    []recipe.Recipe{},
		Pagination: page.Empty[recipe.Recipe](c.criteria).Metadata,
	}
	return c
}

func (c *Controller) Criteria() filter.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria.Clone()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// UpdateFilters merges p into the criteria and fetches with the result.
func (c *Controller) UpdateFilters(ctx context.Context, p filter.Partial) {
	c.mu.Lock()
	next := filter.Merge(c.criteria, p)
	c.start(ctx, next)
}

// ChangePage moves to page n keeping every filter.
func (c *Controller) ChangePage(ctx context.Context, n int) {
	c.UpdateFilters(ctx, filter.Partial{Page: filter.Set(n)})
}

// ClearFilters drops every filter, returns to the first page and keeps the
// page size.
func (c *Controller) ClearFilters(ctx context.Context) {
	c.mu.Lock()
	next := filter.Clear(c.criteria)
	c.start(ctx, next)
}

// Refresh fetches again with the current criteria.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.start(ctx, c.criteria)
}

// Wait blocks until every fetch started so far has resolved.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// start must be called with c.mu held; it releases it.
func (c *Controller) start(ctx context.Context, next filter.Criteria) {
	c.criteria = next.Clone()
	c.seq++
	seq := c.seq

	c.state.Criteria = next.Clone()
	c.state.Loading = true
	state := c.bump()
	c.inflight.Add(1)
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "fetching recipes",
		slog.Uint64("seq", seq),
		slog.String("query", next.Query().Encode()))
	c.publish(state)

	go func() {
		defer c.inflight.Done()
		c.resolve(ctx, seq, next)
	}()
}

func (c *Controller) resolve(ctx context.Context, seq uint64, criteria filter.Criteria) {
	p, err := Fetch(ctx, c.fetcher, criteria)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch recipes",
			slog.Uint64("seq", seq),
			slog.Any("error", err))
	}

	c.mu.Lock()
	if seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "discarding stale recipe page",
			slog.Uint64("seq", seq),
			slog.Uint64("latest", latest))
		return
	}
	c.state = State{
		Criteria:   criteria.Clone(),
		Content:    p.Content,
		Pagination: p.Metadata,
		Loading:    false,
		Err:        err,
	}
	state := c.bump()
	c.mu.Unlock()

	c.publish(state)
}

// bump must be called with c.mu held.
func (c *Controller) bump() State {
	c.version++
	c.state.Version = c.version
	return c.state
}

func (c *Controller) publish(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
