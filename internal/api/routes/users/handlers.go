// Package users contains handlers for the user resource.
package users

import (
	"errors"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/cookbook/internal/api/error"
	"github.com/matt-dz/cookbook/internal/api/token"
	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/env"
	"github.com/matt-dz/cookbook/internal/json"
	"github.com/matt-dz/cookbook/internal/requestid"
	"github.com/matt-dz/cookbook/internal/usecase"
	"github.com/matt-dz/cookbook/internal/user"
)

// HandleLogin godoc
//
//	@Summary		Log in.
//	@Description	Sets the backend session cookie on success.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		user.LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	apiError.Error	"Invalid credentials"
//	@Failure		422		{object}	apiError.Error
//	@Router			/api/users/login [POST]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request user.LoginRequest
	if err := json.DecodeRequest(w, r, &request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	session, err := env.Service(auth.Anonymous()).Login(ctx, request)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to log in", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if session.SessionID != "" {
		http.SetCookie(w, token.NewSessionCookie(session.SessionID, env))
	}
	if err := json.Encode(w, http.StatusOK, LoginResponse{User: session.User, Token: session.Token}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleRegister godoc
//
//	@Summary	Create an account.
//	@Tags		User
//	@Accept		json
//	@Produce	json
//	@Param		request	body		user.RegisterRequest	true	"Account"
//	@Success	201		{object}	user.RegisterResponse
//	@Failure	409		{object}	apiError.Error	"Email already registered"
//	@Failure	422		{object}	apiError.Error
//	@Router		/api/users/register [POST]
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request user.RegisterRequest
	if err := json.DecodeRequest(w, r, &request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	resp, err := env.Service(auth.Anonymous()).Register(ctx, request)
	if errors.Is(err, usecase.ErrEmailTaken) {
		_ = apiError.EncodeError(w, apiError.EmailConflict, "email is already registered", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to register", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusCreated, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleLogout godoc
//
//	@Summary		Log out.
//	@Description	Always clears the session cookie, even when the backend call fails.
//	@Tags			User
//	@Success		204
//	@Router			/api/users/logout [POST]
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	if err := env.Client(token.SessionFromCtx(ctx)).Logout(ctx); err != nil {
		env.Logger.WarnContext(ctx, "backend logout failed", slog.Any("error", err))
	}
	http.SetCookie(w, token.ExpiredSessionCookie(env))
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe godoc
//
//	@Summary	Get the logged in user.
//	@Tags		User
//	@Produce	json
//	@Success	200	{object}	user.User
//	@Failure	401	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/me [GET]
func HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	me, err := env.Service(token.SessionFromCtx(ctx)).Me(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get current user", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, me); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCheckEmail godoc
//
//	@Summary	Check whether an email address is free.
//	@Tags		User
//	@Accept		json
//	@Produce	json
//	@Param		request	body		user.EmailRequest	true	"Email"
//	@Success	200		{object}	EmailAvailabilityResponse
//	@Router		/api/users/check-email [POST]
func HandleCheckEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request user.EmailRequest
	if err := json.DecodeRequest(w, r, &request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	exists, err := env.Service(auth.Anonymous()).EmailExists(ctx, request)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to check email", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusOK, EmailAvailabilityResponse{IsAvailable: !exists}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleVerifyEmail godoc
//
//	@Summary	Confirm an email address with the mailed token.
//	@Tags		User
//	@Param		token	query	string	true	"Verification token"
//	@Param		email	query	string	true	"Email"
//	@Success	204
//	@Failure	422	{object}	apiError.Error
//	@Router		/api/users/verify-email [GET]
func HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	request := user.VerifyEmailRequest{
		Token: r.URL.Query().Get("token"),
		Email: r.URL.Query().Get("email"),
	}
	if err := env.Service(auth.Anonymous()).VerifyEmail(ctx, request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to verify email", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleResendVerification godoc
//
//	@Summary	Send a new verification email.
//	@Tags		User
//	@Accept		json
//	@Param		request	body	user.EmailRequest	true	"Email"
//	@Success	202
//	@Failure	422	{object}	apiError.Error
//	@Router		/api/users/resend-verification [POST]
func HandleResendVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request user.EmailRequest
	if err := json.DecodeRequest(w, r, &request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	msg, err := env.Service(auth.Anonymous()).ResendVerification(ctx, request)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to resend verification", slog.Any("error", err))
		_ = apiError.Encode(w, apiError.FromBackend(err, apiError.NotFound, requestID))
		return
	}

	if err := json.Encode(w, http.StatusAccepted, map[string]string{"message": msg}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
