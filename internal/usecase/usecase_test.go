package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/client"
	"github.com/matt-dz/cookbook/internal/mealplan"
	"github.com/matt-dz/cookbook/internal/recipe"
	"github.com/matt-dz/cookbook/internal/user"
	"github.com/matt-dz/cookbook/internal/validation"
)

// fakeBackend implements the calls these tests make; anything else panics
// through the nil embedded interface.
type fakeBackend struct {
	Backend

	emailTaken  bool
	registered  []user.RegisterRequest
	created     []recipe.Recipe
	recommended []string
	logoutErr   error
	asked       int
	updated     []mealplan.MealPlan
}

func (f *fakeBackend) EmailExists(_ context.Context, _ string) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeBackend) Register(_ context.Context, req user.RegisterRequest) (user.RegisterResponse, error) {
	f.registered = append(f.registered, req)
	return user.RegisterResponse{Message: "welcome"}, nil
}

func (f *fakeBackend) CreateRecipe(_ context.Context, r recipe.Recipe) (recipe.Recipe, error) {
	f.created = append(f.created, r)
	r.ID = 10
	return r, nil
}

func (f *fakeBackend) RecommendRecipes(_ context.Context, ingredients []string) ([]recipe.Recipe, error) {
	f.recommended = ingredients
	return []recipe.Recipe{{ID: 1}}, nil
}

func (f *fakeBackend) UpdateMealPlan(_ context.Context, id int64, plan mealplan.MealPlan) (mealplan.MealPlan, error) {
	f.updated = append(f.updated, plan)
	plan.ID = id
	return plan, nil
}

func (f *fakeBackend) Logout(_ context.Context) error {
	return f.logoutErr
}

func (f *fakeBackend) Login(_ context.Context, _ user.LoginRequest) (auth.Session, error) {
	return auth.NewSession("", "sess", nil), nil
}

func (f *fakeBackend) Ask(_ context.Context, _ client.ChatRequest) (client.ChatResponse, error) {
	f.asked++
	return client.ChatResponse{Answer: "ok"}, nil
}

type fakeStore struct {
	cleared bool
}

func (s *fakeStore) Clear() error {
	s.cleared = true
	return nil
}

func TestRegister(t *testing.T) {
	valid := user.RegisterRequest{Email: "cook@example.com", Password: "kimchi42", Name: "Min"}

	tests := []struct {
		name           string
		req            user.RegisterRequest
		emailTaken     bool
		wantErr        error
		wantViolations bool
		wantRegistered int
	}{
		{
			name:           "free address",
			req:            valid,
			wantRegistered: 1,
		},
		{
			name:       "taken address",
			req:        valid,
			emailTaken: true,
			wantErr:    ErrEmailTaken,
		},
		{
			name:           "invalid input never reaches the backend",
			req:            user.RegisterRequest{Email: "nope", Password: "abc", Name: "M"},
			wantViolations: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{emailTaken: tt.emailTaken}
			_, err := New(backend, nil).Register(context.Background(), tt.req)

			switch {
			case tt.wantViolations:
				var v validation.Violations
				if !errors.As(err, &v) {
					t.Fatalf("expected violations, got %v", err)
				}
				for _, field := range []string{"email", "password", "name"} {
					if !v.Has(field) {
						t.Errorf("expected violation on %s, got %v", field, v)
					}
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			if len(backend.registered) != tt.wantRegistered {
				t.Errorf("expected %d registrations, got %d", tt.wantRegistered, len(backend.registered))
			}
		})
	}
}

func TestCreateRecipe(t *testing.T) {
	backend := &fakeBackend{}
	svc := New(backend, nil)

	_, err := svc.CreateRecipe(context.Background(), recipe.Recipe{})
	var v validation.Violations
	if !errors.As(err, &v) {
		t.Fatalf("expected violations, got %v", err)
	}
	for _, field := range []string{"title", "ingredients", "instructions"} {
		if !v.Has(field) {
			t.Errorf("expected violation on %s, got %v", field, v)
		}
	}
	if len(backend.created) != 0 {
		t.Error("invalid recipe reached the backend")
	}

	created, err := svc.CreateRecipe(context.Background(), recipe.Recipe{
		Title:        "Kimchi Stew",
		Ingredients:  []recipe.Ingredient{{Name: "kimchi"}},
		Instructions: []recipe.Instruction{{StepNumber: 1, Description: "Boil."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("expected created id 10, got %d", created.ID)
	}
}

func TestRecommend(t *testing.T) {
	backend := &fakeBackend{}
	svc := New(backend, nil)

	if _, err := svc.Recommend(context.Background(), recipe.RecommendRequest{Ingredients: []string{" ", ""}}); err == nil {
		t.Fatal("expected error for blank ingredients")
	}

	_, err := svc.Recommend(context.Background(), recipe.RecommendRequest{Ingredients: []string{"tofu", " tofu", "egg"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"tofu", "egg"}, backend.recommended); diff != "" {
		t.Errorf("ingredients mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateMealPlan(t *testing.T) {
	valid := mealplan.MealPlan{Name: "Soup week", StartDate: "2026-10-19", EndDate: "2026-10-25"}
	backwards := valid
	backwards.StartDate, backwards.EndDate = valid.EndDate, valid.StartDate

	tests := []struct {
		name    string
		id      int64
		plan    mealplan.MealPlan
		wantErr bool
		field   string
	}{
		{name: "valid", id: 4, plan: valid},
		{name: "zero id", id: 0, plan: valid, wantErr: true},
		{name: "missing name", id: 4, plan: mealplan.MealPlan{StartDate: "2026-10-19", EndDate: "2026-10-25"}, wantErr: true, field: "name"},
		{name: "end before start", id: 4, plan: backwards, wantErr: true, field: "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			got, err := New(backend, nil).UpdateMealPlan(context.Background(), tt.id, tt.plan)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.field != "" {
					var v validation.Violations
					if !errors.As(err, &v) || !v.Has(tt.field) {
						t.Errorf("expected violation on %s, got %v", tt.field, err)
					}
				}
				if len(backend.updated) != 0 {
					t.Error("invalid meal plan reached the backend")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.id || got.Name != tt.plan.Name {
				t.Errorf("unexpected meal plan %+v", got)
			}
		})
	}
}

func TestInvalidIDs(t *testing.T) {
	svc := New(&fakeBackend{}, nil)
	ctx := context.Background()

	if _, err := svc.GetRecipe(ctx, 0); !errors.Is(err, ErrInvalidID) {
		t.Errorf("GetRecipe(0): expected ErrInvalidID, got %v", err)
	}
	if err := svc.DeleteRecipe(ctx, -1); !errors.Is(err, ErrInvalidID) {
		t.Errorf("DeleteRecipe(-1): expected ErrInvalidID, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	backend := &fakeBackend{logoutErr: errors.New("backend down")}
	store := &fakeStore{}

	if err := New(backend, nil).Logout(context.Background(), store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.cleared {
		t.Error("expected local session to be cleared")
	}
}

func TestLoginAndChatValidation(t *testing.T) {
	backend := &fakeBackend{}
	svc := New(backend, nil)
	ctx := context.Background()

	if _, err := svc.Login(ctx, user.LoginRequest{Email: "cook@example.com"}); err == nil {
		t.Error("expected missing password to fail")
	}
	session, err := svc.Login(ctx, user.LoginRequest{Email: "cook@example.com", Password: "kimchi42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.SessionID != "sess" {
		t.Errorf("unexpected session %+v", session)
	}

	if _, err := svc.Chat(ctx, client.ChatRequest{}); err == nil {
		t.Error("expected empty question to fail")
	}
	if backend.asked != 0 {
		t.Error("empty question reached the backend")
	}
}
