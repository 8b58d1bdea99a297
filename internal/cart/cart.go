// Package cart contains the shopping list entities.
package cart

type Item struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Checked  bool    `json:"checked"`
	Category string  `json:"category,omitempty"`
}

// ItemUpdate is a sparse change to an Item.
type ItemUpdate struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Amount   *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Unit     *string  `json:"unit,omitempty"`
	Checked  *bool    `json:"checked,omitempty"`
	Category *string  `json:"category,omitempty"`
}

type Cart struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Items     []Item `json:"items"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Remaining counts the items not yet checked off.
func (c Cart) Remaining() int {
	n := 0
	for _, it := range c.Items {
		if !it.Checked {
			n++
		}
	}
	return n
}

// ByCategory groups items by category, keeping their order. Items without a
// category are grouped under the empty string.
func (c Cart) ByCategory() map[string][]Item {
	out := make(map[string][]Item)
	for _, it := range c.Items {
		out[it.Category] = append(out[it.Category], it)
	}
	return out
}
