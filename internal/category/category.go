// Package category loads the four category axes used to filter recipes.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/recipe"
)

// Lister fetches the categories of one axis.
type Lister interface {
	Categories(ctx context.Context, axis recipe.Axis) ([]recipe.Category, error)
}

// Set holds the categories of every axis. An axis that failed to load maps
// to an empty list.
type Set map[recipe.Axis][]recipe.Category

func (s Set) Of(axis recipe.Axis) []recipe.Category {
	return s[axis]
}

// Lookup returns the category with id on axis.
func (s Set) Lookup(axis recipe.Axis, id int64) (recipe.Category, bool) {
	for _, c := range s[axis] {
		if c.ID == id {
			return c, true
		}
	}
	return recipe.Category{}, false
}

// Next returns the category after id on axis, cycling through "none". A nil
// id selects the first category; the last one wraps back to nil.
func (s Set) Next(axis recipe.Axis, id *int64) *int64 {
	list := s[axis]
	if len(list) == 0 {
		return nil
	}
	if id == nil {
		first := list[0].ID
		return &first
	}
	for i, c := range list {
		if c.ID != *id {
			continue
		}
		if i+1 == len(list) {
			return nil
		}
		next := list[i+1].ID
		return &next
	}
	return nil
}

type Loader struct {
	lister Lister
	logger *slog.Logger
}

func NewLoader(lister Lister, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = log.NullLogger()
	}
	return &Loader{lister: lister, logger: logger}
}

// Load fetches all four axes in parallel and waits for every one of them.
// Failed axes are logged and left empty; their errors are joined into the
// returned error while the other axes are still usable.
func (l *Loader) Load(ctx context.Context) (Set, error) {
	var (
		mu   sync.Mutex
		set  = make(Set, len(recipe.Axes()))
		errs []error
	)

	var g errgroup.Group
	for _, axis := range recipe.Axes() {
		g.Go(func() error {
			categories, err := l.lister.Categories(ctx, axis)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				l.logger.ErrorContext(ctx, "failed to load categories",
					slog.String("axis", axis.String()),
					slog.Any("error", err))
				set[axis] = []recipe.Category{}
				errs = append(errs, fmt.Errorf("loading %s categories: %w", axis, err))
				return nil
			}
			set[axis] = categories
			return nil
		})
	}
	_ = g.Wait()

	return set, errors.Join(errs...)
}
