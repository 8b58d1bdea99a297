// Package mealplans contains handlers for the meal plans endpoint.
package mealplans

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/cookbook/internal/api/error"
	"github.com/matt-dz/cookbook/internal/api/routes/params"
	"github.com/matt-dz/cookbook/internal/api/token"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/json"
	"github.com/matt-dz/cookbook/internal/mealplan"
	"github.com/matt-dz/cookbook/internal/requestid"
)

// ListMealPlans godoc
//
//	@Summary	List the caller's meal plans.
//	@Tags		Meal Plans
//	@Produce	json
//	@Success	200	{array}		mealplan.MealPlan
//	@Failure	401	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/meal-plans [GET]
func ListMealPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	svc := env.Service(token.SessionFromCtx(ctx))

	me, err := svc.Me(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to resolve current user", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	plans, err := svc.MealPlans(ctx, me.ID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list meal plans", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}
	if plans == nil {
		plans = []mealplan.MealPlan{}
	}

	if err := json.Encode(w, http.StatusOK, plans); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// GetMealPlan godoc
//
//	@Summary	Get a meal plan.
//	@Tags		Meal Plans
//	@Produce	json
//	@Param		id	path		int	true	"Meal plan ID"
//	@Success	200	{object}	mealplan.MealPlan
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/meal-plans/{id} [GET]
func GetMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	plan, err := env.Service(token.SessionFromCtx(ctx)).MealPlan(ctx, id)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get meal plan", slog.Int64("meal-plan-id", id), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.MealPlanNotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, plan); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// CreateMealPlan godoc
//
//	@Summary	Create a meal plan.
//	@Tags		Meal Plans
//	@Accept		json
//	@Produce	json
//	@Param		plan	body		mealplan.MealPlan	true	"Meal plan"
//	@Success	201		{object}	mealplan.MealPlan
//	@Failure	422		{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/meal-plans [POST]
func CreateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var plan mealplan.MealPlan
	if err := json.DecodeRequest(w, r, &plan); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	created, err := env.Service(token.SessionFromCtx(ctx)).CreateMealPlan(ctx, plan)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create meal plan", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusCreated, created); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// UpdateMealPlan godoc
//
//	@Summary	Replace a meal plan.
//	@Tags		Meal Plans
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Meal plan ID"
//	@Param		plan	body		mealplan.MealPlan	true	"Meal plan"
//	@Success	200		{object}	mealplan.MealPlan
//	@Failure	400		{object}	apiError.Error
//	@Failure	404		{object}	apiError.Error
//	@Failure	422		{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/meal-plans/{id} [PUT]
func UpdateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	var plan mealplan.MealPlan
	if err := json.DecodeRequest(w, r, &plan); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	updated, err := env.Service(token.SessionFromCtx(ctx)).UpdateMealPlan(ctx, id, plan)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update meal plan", slog.Int64("meal-plan-id", id), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.MealPlanNotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, updated); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// DeleteMealPlan godoc
//
//	@Summary	Delete a meal plan.
//	@Tags		Meal Plans
//	@Param		id	path	int	true	"Meal plan ID"
//	@Success	204
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/meal-plans/{id} [DELETE]
func DeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	if err := env.Service(token.SessionFromCtx(ctx)).DeleteMealPlan(ctx, id); err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete meal plan", slog.Int64("meal-plan-id", id), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.MealPlanNotFound, requestID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem godoc
//
//	@Summary	Schedule a recipe in a meal plan.
//	@Tags		Meal Plans
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Meal plan ID"
//	@Param		item	body		mealplan.Item	true	"Item"
//	@Success	201		{object}	mealplan.Item
//	@Failure	404		{object}	apiError.Error
//	@Failure	422		{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/meal-plans/{id}/items [POST]
func AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	planID, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	var item mealplan.Item
	if err := json.DecodeRequest(w, r, &item); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	added, err := env.Service(token.SessionFromCtx(ctx)).AddMealPlanItem(ctx, planID, item)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to add meal plan item", slog.Int64("meal-plan-id", planID), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.MealPlanNotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusCreated, added); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// RemoveItem godoc
//
//	@Summary	Remove a recipe from a meal plan.
//	@Tags		Meal Plans
//	@Param		id		path	int	true	"Meal plan ID"
//	@Param		itemId	path	int	true	"Item ID"
//	@Success	204
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/meal-plans/{id}/items/{itemId} [DELETE]
func RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	planID, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}
	itemID, err := params.PathID(r, "itemId")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	if err := env.Service(token.SessionFromCtx(ctx)).RemoveMealPlanItem(ctx, planID, itemID); err != nil {
		env.Logger.ErrorContext(ctx, "failed to remove meal plan item",
			slog.Int64("meal-plan-id", planID),
			slog.Int64("item-id", itemID),
			slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.MealPlanNotFound, requestID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
