package mealplan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDays(t *testing.T) {
	plan := MealPlan{Items: []Item{
		{ID: 1, Date: "2025-03-02", MealType: MealDinner},
		{ID: 2, Date: "2025-03-01", MealType: MealSnack},
		{ID: 3, Date: "2025-03-02", MealType: MealBreakfast},
		{ID: 4, Date: "2025-03-01", MealType: MealLunch},
	}}

	want := []Day{
		{Date: "2025-03-01", Items: []Item{{ID: 4, Date: "2025-03-01", MealType: MealLunch}, {ID: 2, Date: "2025-03-01", MealType: MealSnack}}},
		{Date: "2025-03-02", Items: []Item{{ID: 3, Date: "2025-03-02", MealType: MealBreakfast}, {ID: 1, Date: "2025-03-02", MealType: MealDinner}}},
	}
	if diff := cmp.Diff(want, plan.Days()); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}
}

func TestMealTypeValidate(t *testing.T) {
	for _, m := range []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack} {
		if err := m.Validate(); err != nil {
			t.Errorf("%s: unexpected error %v", m, err)
		}
	}
	if err := MealType("brunch").Validate(); err == nil {
		t.Error("expected error for unknown meal type")
	}
}
