package recipes

import (
	"github.com/matt-dz/cookbook/internal/page"
	"github.com/matt-dz/cookbook/internal/recipe"
)

// ListRecipesResponse is the listing state a browser renders.
type ListRecipesResponse struct {
	Content    []recipe.Recipe `json:"content"`
	Pagination page.Metadata   `json:"pagination"`
	Loading    bool            `json:"loading"`
	Error      *string         `json:"error"`
}
