// Package error contains the API error envelope and its codes.
package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/matt-dz/cookbook/internal/auth"
	cbhttp "github.com/matt-dz/cookbook/internal/http"
	"github.com/matt-dz/cookbook/internal/validation"
)

// Error is the body of every failed API response.
type Error struct {
	Code       ErrorCode             `json:"code"`
	Status     int                   `json:"status"`
	Message    string                `json:"message"`
	ErrorID    string                `json:"error_id"`
	Violations validation.Violations `json:"violations,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func New(code ErrorCode, message, errorID string) *Error {
	return &Error{
		Code:    code,
		Status:  code.StatusCode(),
		Message: message,
		ErrorID: errorID,
	}
}

// Encode writes e as the response.
func Encode(w http.ResponseWriter, e *Error) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		return fmt.Errorf("encoding error response: %w", err)
	}
	return nil
}

func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	return Encode(w, New(code, message, errorID))
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}

// EncodeViolations reports every failed input rule at once.
func EncodeViolations(w http.ResponseWriter, v validation.Violations, errorID string) error {
	e := New(UnprocessableEntity, v.Error(), errorID)
	e.Violations = v
	return Encode(w, e)
}

// FromBackend translates an error returned while talking to the recipe
// backend. notFound is the code used when the backend answered 404.
func FromBackend(err error, notFound ErrorCode, errorID string) *Error {
	var violations validation.Violations
	if errors.As(err, &violations) {
		e := New(UnprocessableEntity, violations.Error(), errorID)
		e.Violations = violations
		return e
	}

	switch {
	case errors.Is(err, auth.ErrExpired):
		return New(ExpiredSession, "session expired", errorID)
	case errors.Is(err, auth.ErrUnauthenticated):
		return New(Unauthenticated, "not logged in", errorID)
	}

	var transportErr *cbhttp.TransportError
	if errors.As(err, &transportErr) {
		return New(BackendUnavailable, "recipe service unavailable", errorID)
	}

	var statusErr *cbhttp.StatusError
	if !errors.As(err, &statusErr) {
		return New(InternalServerError, "internal server error", errorID)
	}

	switch statusErr.Status {
	case http.StatusNotFound:
		return New(notFound, statusErr.Message, errorID)
	case http.StatusUnauthorized:
		return New(InvalidCredentials, statusErr.Message, errorID)
	case http.StatusForbidden:
		return New(InsufficientPermissions, statusErr.Message, errorID)
	case http.StatusConflict:
		return New(EmailConflict, statusErr.Message, errorID)
	case http.StatusBadRequest:
		return New(BadRequest, statusErr.Message, errorID)
	case http.StatusUnprocessableEntity:
		return New(UnprocessableEntity, statusErr.Message, errorID)
	}
	return New(BackendError, statusErr.Message, errorID)
}
