// Package categories contains handlers for the categories endpoint.
package categories

import (
	"log/slog"
	"net/http"

	"github.com/matt-dz/cookbook/internal/api/token"
	"github.com/matt-dz/cookbook/internal/category"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/json"
	"github.com/matt-dz/cookbook/internal/recipe"
)

type ListCategoriesResponse struct {
	Categories map[recipe.Axis][]recipe.Category `json:"categories"`
	Error      *string                           `json:"error"`
}

// ListCategories godoc
//
//	@Summary		List the categories of all four axes.
//	@Description	Axes that fail to load are returned empty and reported in error.
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	ListCategoriesResponse
//	@Router			/api/categories [GET]
func ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	set, err := env.Categories(token.SessionFromCtx(ctx)).Load(ctx)
	resp := ListCategoriesResponse{Categories: set}
	if err != nil {
		msg := "Some categories could not be loaded."
		resp.Error = &msg
	}
	if resp.Categories == nil {
		resp.Categories = category.Set{}
	}

	if err := json.Encode(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
