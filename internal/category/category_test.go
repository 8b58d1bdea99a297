package category

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/matt-dz/cookbook/internal/recipe"
)

type listerFunc func(ctx context.Context, axis recipe.Axis) ([]recipe.Category, error)

func (f listerFunc) Categories(ctx context.Context, axis recipe.Axis) ([]recipe.Category, error) {
	return f(ctx, axis)
}

func ptr(v int64) *int64 { return &v }

func TestLoad(t *testing.T) {
	defer goleak.VerifyNone(t)

	errDown := errors.New("category service down")
	var calls atomic.Int32

	lister := listerFunc(func(_ context.Context, axis recipe.Axis) ([]recipe.Category, error) {
		calls.Add(1)
		if axis == recipe.AxisMethod {
			return nil, errDown
		}
		return []recipe.Category{{ID: 1, Name: axis.Label(), Type: axis}}, nil
	})

	set, err := NewLoader(lister, nil).Load(context.Background())
	if !errors.Is(err, errDown) {
		t.Fatalf("expected joined axis error, got %v", err)
	}
	if calls.Load() != 4 {
		t.Errorf("expected 4 axis requests, got %d", calls.Load())
	}

	for _, axis := range []recipe.Axis{recipe.AxisType, recipe.AxisSituation, recipe.AxisIngredient} {
		if len(set.Of(axis)) != 1 {
			t.Errorf("expected one %s category, got %v", axis, set.Of(axis))
		}
	}
	if got := set.Of(recipe.AxisMethod); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil method list, got %#v", got)
	}
}

func TestLoadAllAxes(t *testing.T) {
	defer goleak.VerifyNone(t)

	lister := listerFunc(func(_ context.Context, axis recipe.Axis) ([]recipe.Category, error) {
		return []recipe.Category{{ID: 2, Name: "x", Type: axis}}, nil
	})

	set, err := NewLoader(lister, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != len(recipe.Axes()) {
		t.Errorf("expected %d axes, got %d", len(recipe.Axes()), len(set))
	}
}

func TestLookup(t *testing.T) {
	set := Set{
		recipe.AxisType: {{ID: 1, Name: "Soup"}, {ID: 2, Name: "Stew"}},
	}

	got, ok := set.Lookup(recipe.AxisType, 2)
	if !ok || got.Name != "Stew" {
		t.Errorf("Lookup(2) = %+v, %v", got, ok)
	}
	if _, ok := set.Lookup(recipe.AxisType, 3); ok {
		t.Error("expected unknown id to miss")
	}
	if _, ok := set.Lookup(recipe.AxisMethod, 1); ok {
		t.Error("expected empty axis to miss")
	}
}

func TestNext(t *testing.T) {
	set := Set{
		recipe.AxisType: {{ID: 1}, {ID: 5}},
	}

	tests := []struct {
		name string
		axis recipe.Axis
		cur  *int64
		want *int64
	}{
		{name: "none selects first", axis: recipe.AxisType, cur: nil, want: ptr(1)},
		{name: "advances", axis: recipe.AxisType, cur: ptr(1), want: ptr(5)},
		{name: "wraps to none", axis: recipe.AxisType, cur: ptr(5), want: nil},
		{name: "unknown id resets", axis: recipe.AxisType, cur: ptr(9), want: nil},
		{name: "empty axis", axis: recipe.AxisMethod, cur: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, set.Next(tt.axis, tt.cur)); diff != "" {
				t.Errorf("Next mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
