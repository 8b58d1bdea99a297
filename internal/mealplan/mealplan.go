// Package mealplan contains the meal plan entities.
package mealplan

import (
	"fmt"
	"slices"
	"time"

	"github.com/matt-dz/cookbook/internal/recipe"
)

// DateLayout is the calendar date format the backend uses.
const DateLayout = time.DateOnly

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) Validate() error {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return nil
	}
	return fmt.Errorf("unknown meal type: %q", string(m))
}

type Item struct {
	ID       int64          `json:"id,omitempty"`
	RecipeID int64          `json:"recipe_id" validate:"required"`
	Recipe   *recipe.Recipe `json:"recipe,omitempty"`
	Date     string         `json:"date" validate:"required,datetime=2006-01-02"`
	MealType MealType       `json:"meal_type" validate:"validateFn"`
	Servings int            `json:"servings" validate:"gte=1"`
}

type MealPlan struct {
	ID        int64  `json:"id,omitempty"`
	UserID    int64  `json:"user_id,omitempty"`
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02,dateOnOrAfter=StartDate"`
	Items     []Item `json:"items" validate:"dive"`
}

// Day holds the items planned for one date, ordered by meal.
type Day struct {
	Date  string
	Items []Item
}

var mealOrder = map[MealType]int{
	MealBreakfast: 0,
	MealLunch:     1,
	MealDinner:    2,
	MealSnack:     3,
}

// Days groups the plan's items by date in calendar order.
func (m MealPlan) Days() []Day {
	byDate := make(map[string][]Item)
	for _, it := range m.Items {
		byDate[it.Date] = append(byDate[it.Date], it)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		items := byDate[d]
		slices.SortStableFunc(items, func(a, b Item) int {
			return mealOrder[a.MealType] - mealOrder[b.MealType]
		})
		days = append(days, Day{Date: d, Items: items})
	}
	return days
}
