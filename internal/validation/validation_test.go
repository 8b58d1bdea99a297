package validation

import (
	"errors"
	"testing"

	"github.com/matt-dz/cookbook/internal/cart"
	"github.com/matt-dz/cookbook/internal/mealplan"
	"github.com/matt-dz/cookbook/internal/recipe"
	"github.com/matt-dz/cookbook/internal/user"
)

func validRecipe() recipe.Recipe {
	return recipe.Recipe{
		Title:        "Kimchi Stew",
		Ingredients:  []recipe.Ingredient{{Name: "kimchi"}},
		Instructions: []recipe.Instruction{{StepNumber: 1, Description: "boil"}},
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{
			name:  "valid recipe",
			input: validRecipe(),
		},
		{
			name:       "empty recipe reports every violation",
			input:      recipe.Recipe{},
			wantFields: []string{"title", "ingredients", "instructions"},
		},
		{
			name: "nested ingredient",
			input: func() recipe.Recipe {
				r := validRecipe()
				r.Ingredients = append(r.Ingredients, recipe.Ingredient{})
				return r
			}(),
			wantFields: []string{"ingredients[1].name"},
		},
		{
			name: "bad difficulty",
			input: func() recipe.Recipe {
				r := validRecipe()
				r.Difficulty = "BRUTAL"
				return r
			}(),
			wantFields: []string{"difficulty"},
		},
		{
			name:  "valid meal plan",
			input: mealplan.MealPlan{Name: "week", StartDate: "2025-03-01", EndDate: "2025-03-07"},
		},
		{
			name:       "meal plan missing fields",
			input:      mealplan.MealPlan{},
			wantFields: []string{"name", "start_date", "end_date"},
		},
		{
			name:       "meal plan ends before it starts",
			input:      mealplan.MealPlan{Name: "week", StartDate: "2025-03-07", EndDate: "2025-03-01"},
			wantFields: []string{"end_date"},
		},
		{
			name:       "meal plan bad date",
			input:      mealplan.MealPlan{Name: "week", StartDate: "03/01/2025", EndDate: "2025-03-01"},
			wantFields: []string{"start_date"},
		},
		{
			name: "meal plan item meal type",
			input: mealplan.MealPlan{
				Name: "week", StartDate: "2025-03-01", EndDate: "2025-03-01",
				Items: []mealplan.Item{{RecipeID: 1, Date: "2025-03-01", MealType: "brunch", Servings: 1}},
			},
			wantFields: []string{"items[0].meal_type"},
		},
		{
			name:       "cart item name",
			input:      cart.Item{Amount: 1},
			wantFields: []string{"name"},
		},
		{
			name:  "valid login",
			input: user.LoginRequest{Email: "cook@example.com", Password: "secret"},
		},
		{
			name:       "login bad email and short password",
			input:      user.LoginRequest{Email: "cook", Password: "123"},
			wantFields: []string{"email", "password"},
		},
		{
			name:  "valid register",
			input: user.RegisterRequest{Email: "cook@example.com", Password: "kimchi42", Name: "Ji"},
		},
		{
			name:       "register weak password and short name",
			input:      user.RegisterRequest{Email: "cook@example.com", Password: "abcdefgh", Name: "J"},
			wantFields: []string{"password", "name"},
		},
		{
			name:       "recommendations need an ingredient",
			input:      recipe.RecommendRequest{},
			wantFields: []string{"ingredients"},
		},
		{
			name:       "recommendations reject blank ingredient",
			input:      recipe.RecommendRequest{Ingredients: []string{"egg", ""}},
			wantFields: []string{"ingredients[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.input)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("expected %d violations, got %d: %+v", len(tt.wantFields), len(got), got)
			}
			for _, field := range tt.wantFields {
				if !got.Has(field) {
					t.Errorf("expected violation for %q, got %+v", field, got)
				}
			}
			if (got.Err() == nil) != (len(tt.wantFields) == 0) {
				t.Errorf("Err() disagrees with violations: %v", got.Err())
			}
		})
	}
}

func TestMessages(t *testing.T) {
	got := Check(user.RegisterRequest{Email: "cook@example.com", Password: "abcdefgh", Name: "Ji"})
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %+v", got)
	}
	if got[0].Message != "password must contain at least one digit" {
		t.Errorf("unexpected message %q", got[0].Message)
	}

	got = Check(mealplan.MealPlan{Name: "week", StartDate: "2025-03-07", EndDate: "2025-03-01"})
	if len(got) != 1 || got[0].Message != "end_date must not be before start_date" {
		t.Errorf("unexpected violations %+v", got)
	}

	got = Check(recipe.Recipe{})
	var violations Violations
	if !errors.As(got.Err(), &violations) || len(violations) != 3 {
		t.Errorf("expected Err to unwrap into violations, got %v", got.Err())
	}
	if got[0].Message != "title is required" {
		t.Errorf("unexpected message %q", got[0].Message)
	}
}
