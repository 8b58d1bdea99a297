// Package cart contains handlers for the shopping cart endpoint.
package cart

import (
	"context"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/cookbook/internal/api/error"
	"github.com/matt-dz/cookbook/internal/api/routes/params"
	"github.com/matt-dz/cookbook/internal/api/token"
	"github.com/matt-dz/cookbook/internal/cart"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/json"
	"github.com/matt-dz/cookbook/internal/requestid"
	"github.com/matt-dz/cookbook/internal/usecase"
)

// currentUser resolves the caller's account so the cart can be addressed by
// user id.
func currentUser(ctx context.Context, w http.ResponseWriter, svc *usecase.Service) (int64, bool) {
	env := env.EnvFromCtx(ctx)
	me, err := svc.Me(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to resolve current user", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestid.ExtractRequestID(ctx)))
		return 0, false
	}
	return me.ID, true
}

// GetCart godoc
//
//	@Summary	Get the caller's cart.
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	cart.Cart	"null when the cart does not exist yet"
//	@Failure	401	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/cart [GET]
func GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	svc := env.Service(token.SessionFromCtx(ctx))

	userID, ok := currentUser(ctx, w, svc)
	if !ok {
		return
	}

	c, err := svc.Cart(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestid.ExtractRequestID(ctx)))
		return
	}

	if err := json.Encode(w, http.StatusOK, c); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// AddItem godoc
//
//	@Summary	Add an item to the caller's cart.
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		item	body		cart.Item	true	"Item"
//	@Success	201		{object}	cart.Item
//	@Failure	422		{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/cart/items [POST]
func AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	svc := env.Service(token.SessionFromCtx(ctx))

	var item cart.Item
	if err := json.DecodeRequest(w, r, &item); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	userID, ok := currentUser(ctx, w, svc)
	if !ok {
		return
	}

	added, err := svc.AddToCart(ctx, userID, item)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to add cart item", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusCreated, added); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// UpdateItem godoc
//
//	@Summary	Change an item in the caller's cart.
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Item ID"
//	@Param		updates	body		cart.ItemUpdate	true	"Fields to change"
//	@Success	200		{object}	cart.Item
//	@Failure	404		{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/cart/items/{id} [PATCH]
func UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	svc := env.Service(token.SessionFromCtx(ctx))

	itemID, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	var updates cart.ItemUpdate
	if err := json.DecodeRequest(w, r, &updates); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	userID, ok := currentUser(ctx, w, svc)
	if !ok {
		return
	}

	updated, err := svc.UpdateCartItem(ctx, userID, itemID, updates)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update cart item", slog.Int64("item-id", itemID), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.CartItemNotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, updated); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// RemoveItem godoc
//
//	@Summary	Remove an item from the caller's cart.
//	@Tags		Cart
//	@Param		id	path	int	true	"Item ID"
//	@Success	204
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/cart/items/{id} [DELETE]
func RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	svc := env.Service(token.SessionFromCtx(ctx))

	itemID, err := params.PathID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	userID, ok := currentUser(ctx, w, svc)
	if !ok {
		return
	}

	if err := svc.RemoveCartItem(ctx, userID, itemID); err != nil {
		env.Logger.ErrorContext(ctx, "failed to remove cart item", slog.Int64("item-id", itemID), slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.CartItemNotFound, requestID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear godoc
//
//	@Summary	Empty the caller's cart.
//	@Tags		Cart
//	@Success	204
//	@Security	BearerAuth
//	@Router		/api/cart [DELETE]
func Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	svc := env.Service(token.SessionFromCtx(ctx))

	userID, ok := currentUser(ctx, w, svc)
	if !ok {
		return
	}

	if err := svc.ClearCart(ctx, userID); err != nil {
		env.Logger.ErrorContext(ctx, "failed to clear cart", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestid.ExtractRequestID(ctx)))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
