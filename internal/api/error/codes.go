package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	UnprocessableEntity     ErrorCode = "unprocessable_entity"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	Unauthenticated         ErrorCode = "unauthenticated"
	ExpiredSession          ErrorCode = "expired_session"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	EmailConflict           ErrorCode = "email_conflict"
	NotFound                ErrorCode = "not_found"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	MealPlanNotFound        ErrorCode = "meal_plan_not_found"
	CartItemNotFound        ErrorCode = "cart_item_not_found"
	BackendUnavailable      ErrorCode = "backend_unavailable"
	BackendError            ErrorCode = "backend_error"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	UnprocessableEntity:     http.StatusUnprocessableEntity,
	InvalidCredentials:      http.StatusUnauthorized,
	Unauthenticated:         http.StatusUnauthorized,
	ExpiredSession:          http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	EmailConflict:           http.StatusConflict,
	NotFound:                http.StatusNotFound,
	RecipeNotFound:          http.StatusNotFound,
	MealPlanNotFound:        http.StatusNotFound,
	CartItemNotFound:        http.StatusNotFound,
	BackendUnavailable:      http.StatusBadGateway,
	BackendError:            http.StatusBadGateway,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
