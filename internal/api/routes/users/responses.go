package users

import "github.com/matt-dz/cookbook/internal/user"

type LoginResponse struct {
	User  *user.User `json:"user"`
	Token string     `json:"token,omitempty"`
}

type EmailAvailabilityResponse struct {
	IsAvailable bool `json:"isAvailable"`
}
