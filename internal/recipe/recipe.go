// Package recipe contains the recipe entities served by the cookbook backend.
package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyNormal Difficulty = "NORMAL"
	DifficultyHard   Difficulty = "HARD"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties lists every difficulty in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty parses a difficulty, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
}

func (d Difficulty) String() string {
	return string(d)
}

type Ingredient struct {
	Name   string   `json:"name" validate:"required"`
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
	Unit   string   `json:"unit"`
	Notes  string   `json:"notes,omitempty"`
}

type Seasoning struct {
	Name   string   `json:"name" validate:"required"`
	Amount *float64 `json:"amount"`
	Unit   string   `json:"unit"`
}

type Instruction struct {
	StepNumber  int    `json:"step_number" validate:"gte=1"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Recipe is encoded in snake_case. Decoding also accepts the camelCase
// aliases some backend endpoints emit.
type Recipe struct {
	ID                 int64         `json:"recipe_id,omitempty"`
	Title              string        `json:"title" validate:"required"`
	Description        string        `json:"description,omitempty"`
	Ingredients        []Ingredient  `json:"ingredients" validate:"min=1,dive"`
	Seasonings         []Seasoning   `json:"seasonings" validate:"dive"`
	Instructions       []Instruction `json:"instructions" validate:"min=1,dive"`
	CategoryType       string        `json:"category_type,omitempty"`
	CategorySituation  string        `json:"category_situation,omitempty"`
	CategoryIngredient string        `json:"category_ingredient,omitempty"`
	CategoryMethod     string        `json:"category_method,omitempty"`
	PrepTime           *int          `json:"prep_time,omitempty" validate:"omitempty,gte=0"`
	CookTime           *int          `json:"cook_time,omitempty" validate:"omitempty,gte=0"`
	ServingSize        *int          `json:"serving_size,omitempty" validate:"omitempty,gte=1"`
	Difficulty         Difficulty    `json:"difficulty,omitempty" validate:"omitempty,validateFn"`
	ImageURL           string        `json:"image_url,omitempty"`
	Tags               []string      `json:"tags,omitempty"`
	CreatedAt          string        `json:"created_at,omitempty"`
	UpdatedAt          string        `json:"updated_at,omitempty"`
}

type wireRecipe struct {
	RecipeID              *int64        `json:"recipe_id"`
	RecipeIDAlt           *int64        `json:"recipeId"`
	Title                 string        `json:"title"`
	Description           *string       `json:"description"`
	Ingredients           []Ingredient  `json:"ingredients"`
	Seasonings            []Seasoning   `json:"seasonings"`
	Instructions          []Instruction `json:"instructions"`
	CategoryType          *string       `json:"category_type"`
	CategoryTypeAlt       *string       `json:"categoryType"`
	CategorySituation     *string       `json:"category_situation"`
	CategorySituationAlt  *string       `json:"categorySituation"`
	CategoryIngredient    *string       `json:"category_ingredient"`
	CategoryIngredientAlt *string       `json:"categoryIngredient"`
	CategoryMethod        *string       `json:"category_method"`
	CategoryMethodAlt     *string       `json:"categoryMethod"`
	PrepTime              *int          `json:"prep_time"`
	PrepTimeAlt           *int          `json:"prepTime"`
	CookTime              *int          `json:"cook_time"`
	CookTimeAlt           *int          `json:"cookTime"`
	ServingSize           *int          `json:"serving_size"`
	ServingSizeAlt        *int          `json:"servingSize"`
	Difficulty            *string       `json:"difficulty"`
	ImageURL              *string       `json:"image_url"`
	ImageURLAlt           *string       `json:"imageUrl"`
	Tags                  []string      `json:"tags"`
	CreatedAt             *string       `json:"created_at"`
	CreatedAtAlt          *string       `json:"createdAt"`
	UpdatedAt             *string       `json:"updated_at"`
	UpdatedAtAlt          *string       `json:"updatedAt"`
}

func either[T any](snake, camel *T) *T {
	if snake != nil {
		return snake
	}
	return camel
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	var w wireRecipe
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = Recipe{
		ID:                 deref(either(w.RecipeID, w.RecipeIDAlt)),
		Title:              w.Title,
		Description:        deref(w.Description),
		Ingredients:        w.Ingredients,
		Seasonings:         w.Seasonings,
		Instructions:       w.Instructions,
		CategoryType:       deref(either(w.CategoryType, w.CategoryTypeAlt)),
		CategorySituation:  deref(either(w.CategorySituation, w.CategorySituationAlt)),
		CategoryIngredient: deref(either(w.CategoryIngredient, w.CategoryIngredientAlt)),
		CategoryMethod:     deref(either(w.CategoryMethod, w.CategoryMethodAlt)),
		PrepTime:           either(w.PrepTime, w.PrepTimeAlt),
		CookTime:           either(w.CookTime, w.CookTimeAlt),
		ServingSize:        either(w.ServingSize, w.ServingSizeAlt),
		Difficulty:         Difficulty(deref(w.Difficulty)),
		ImageURL:           deref(either(w.ImageURL, w.ImageURLAlt)),
		Tags:               w.Tags,
		CreatedAt:          deref(either(w.CreatedAt, w.CreatedAtAlt)),
		UpdatedAt:          deref(either(w.UpdatedAt, w.UpdatedAtAlt)),
	}
	return nil
}

// TotalTime is the preparation plus cooking time in minutes, or 0 when
// neither is known.
func (r Recipe) TotalTime() int {
	return deref(r.PrepTime) + deref(r.CookTime)
}

// RecommendRequest asks for recipes that use the given ingredients.
type RecommendRequest struct {
	Ingredients []string `json:"ingredients" validate:"min=1,dive,required"`
}
