package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCart(t *testing.T) {
	c := Cart{Items: []Item{
		{ID: 1, Name: "onion", Category: "veg"},
		{ID: 2, Name: "salt", Checked: true},
		{ID: 3, Name: "carrot", Category: "veg"},
	}}

	if got := c.Remaining(); got != 2 {
		t.Errorf("expected 2 remaining, got %d", got)
	}

	want := map[string][]Item{
		"veg": {{ID: 1, Name: "onion", Category: "veg"}, {ID: 3, Name: "carrot", Category: "veg"}},
		"":    {{ID: 2, Name: "salt", Checked: true}},
	}
	if diff := cmp.Diff(want, c.ByCategory()); diff != "" {
		t.Errorf("grouping mismatch (-want +got):\n%s", diff)
	}
}
