package recipe

import (
	"fmt"
	"strings"
)

// Axis is one of the four independent dimensions a recipe is classified on.
type Axis string

const (
	AxisType       Axis = "TYPE"
	AxisSituation  Axis = "SITUATION"
	AxisIngredient Axis = "INGREDIENT"
	AxisMethod     Axis = "METHOD"
)

// Axes returns the category axes in display order.
func Axes() []Axis {
	return []Axis{AxisType, AxisSituation, AxisIngredient, AxisMethod}
}

func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToUpper(strings.TrimSpace(s)))
	switch a {
	case AxisType, AxisSituation, AxisIngredient, AxisMethod:
		return a, nil
	}
	return "", fmt.Errorf("unknown category axis: %q", s)
}

func (a Axis) String() string {
	return string(a)
}

// Label is the human readable axis name.
func (a Axis) Label() string {
	switch a {
	case AxisType:
		return "Type"
	case AxisSituation:
		return "Situation"
	case AxisIngredient:
		return "Ingredient"
	case AxisMethod:
		return "Method"
	default:
		return "Unknown"
	}
}

type Category struct {
	ID          int64  `json:"category_id"`
	Name        string `json:"name"`
	Type        Axis   `json:"category_type,omitempty"`
	Description string `json:"description,omitempty"`
}
