// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/cookbook/internal/api/error"
	"github.com/matt-dz/cookbook/internal/api/routes/params"
	"github.com/matt-dz/cookbook/internal/api/token"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/filter"
	"github.com/matt-dz/cookbook/internal/json"
	"github.com/matt-dz/cookbook/internal/listing"
	"github.com/matt-dz/cookbook/internal/recipe"
	"github.com/matt-dz/cookbook/internal/requestid"
)

// ListRecipes godoc
//
//	@Summary		List recipes.
//	@Description	Fetches one page of recipes matching the filter and normalizes the backend response.
//	@Tags			Recipes
//	@Produce		json
//
//	@Param			search					query		string		false	"Free text search"
//	@Param			categoryTypeId			query		int			false	"Type category"
//	@Param			categorySituationId		query		int			false	"Situation category"
//	@Param			categoryIngredientId	query		int			false	"Ingredient category"
//	@Param			categoryMethodId		query		int			false	"Method category"
//	@Param			difficulty				query		string		false	"EASY, NORMAL or HARD"
//	@Param			tags					query		[]string	false	"Tags"	collectionFormat(multi)
//	@Param			page					query		int			false	"Zero based page"
//	@Param			size					query		int			false	"Page size"
//	@Param			sort					query		string		false	"Sort order"
//
//	@Success		200						{object}	ListRecipesResponse
//	@Failure		400						{object}	apiError.Error
//	@Router			/api/recipes [GET]
func ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	query := r.URL.Query()
	criteria, err := filter.FromQuery(query)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid listing query", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}
	if !query.Has(filter.ParamSize) && !query.Has(filter.ParamPageSize) && env.Config.PageSize > 0 {
		criteria.Size = env.Config.PageSize
	}

	env.Logger.DebugContext(ctx, "listing recipes", slog.String("query", criteria.Query().Encode()))
	p, err := env.Service(token.SessionFromCtx(ctx)).GetRecipes(ctx, criteria)

	resp := ListRecipesResponse{
		Content:    p.Content,
		Pagination: p.Metadata,
	}
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to fetch recipes", slog.Any("error", err))
		msg := listing.Message(err)
		resp.Error = &msg
	}

	if err := json.Encode(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// GetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	200	{object}	recipe.Recipe
//	@Failure	400	{object}	apiError.Error
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/recipes/{id} [GET]
func GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	rec, err := env.Service(token.SessionFromCtx(ctx)).GetRecipe(ctx, id)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Int64("recipe-id", id), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.RecipeNotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, rec); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// CreateRecipe godoc
//
//	@Summary	Create a recipe.
//	@Tags		Recipes
//	@Accept		json
//	@Produce	json
//	@Param		recipe	body		recipe.Recipe	true	"Recipe"
//	@Success	201		{object}	recipe.Recipe
//	@Failure	400		{object}	apiError.Error
//	@Failure	401		{object}	apiError.Error
//	@Failure	422		{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/recipes [POST]
func CreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var body recipe.Recipe
	if err := json.DecodeRequest(w, r, &body); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	created, err := env.Service(token.SessionFromCtx(ctx)).CreateRecipe(ctx, body)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusCreated, created); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// UpdateRecipe godoc
//
//	@Summary	Replace a recipe.
//	@Tags		Recipes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Recipe ID"
//	@Param		recipe	body		recipe.Recipe	true	"Recipe"
//	@Success	200		{object}	recipe.Recipe
//	@Failure	400		{object}	apiError.Error
//	@Failure	404		{object}	apiError.Error
//	@Failure	422		{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/recipes/{id} [PUT]
func UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	var body recipe.Recipe
	if err := json.DecodeRequest(w, r, &body); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	updated, err := env.Service(token.SessionFromCtx(ctx)).UpdateRecipe(ctx, id, body)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update recipe", slog.Int64("recipe-id", id), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.RecipeNotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, updated); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// DeleteRecipe godoc
//
//	@Summary	Delete a recipe.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/recipes/{id} [DELETE]
func DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	if err := env.Service(token.SessionFromCtx(ctx)).DeleteRecipe(ctx, id); err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete recipe", slog.Int64("recipe-id", id), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.RecipeNotFound, requestID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Recommend godoc
//
//	@Summary	Recommend recipes for the given ingredients.
//	@Tags		Recipes
//	@Produce	json
//	@Param		ingredient	query		[]string	true	"Ingredients"	collectionFormat(multi)
//	@Success	200			{array}		recipe.Recipe
//	@Failure	422			{object}	apiError.Error
//	@Router		/api/recipes/recommendations [GET]
func Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	req := recipe.RecommendRequest{Ingredients: r.URL.Query()["ingredient"]}
	out, err := env.Service(token.SessionFromCtx(ctx)).Recommend(ctx, req)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to recommend recipes", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}
	if out == nil {
		out = []recipe.Recipe{}
	}

	if err := json.Encode(w, http.StatusOK, out); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
