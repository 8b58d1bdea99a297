// Package chat contains the handler for the cooking assistant.
package chat

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/cookbook/internal/api/error"
	"github.com/matt-dz/cookbook/internal/api/token"
	"github.com/matt-dz/cookbook/internal/client"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/json"
	"github.com/matt-dz/cookbook/internal/requestid"
)

// Ask godoc
//
//	@Summary	Ask the cooking assistant a question.
//	@Tags		Chat
//	@Accept		json
//	@Produce	json
//	@Param		message	body		client.ChatRequest	true	"Question"
//	@Success	200		{object}	client.ChatResponse
//	@Failure	422		{object}	apiError.Error
//	@Router		/api/chat [POST]
func Ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var req client.ChatRequest
	if err := json.DecodeRequest(w, r, &req); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	resp, err := env.Service(token.SessionFromCtx(ctx)).Chat(ctx, req)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to ask assistant", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
