// Package user contains the account entities and the payloads of the
// authentication endpoints.
package user

import "github.com/matt-dz/cookbook/internal/role"

type User struct {
	ID              int64     `json:"user_id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	Role            role.Role `json:"role"`
	LastLoginAt     *string   `json:"last_login_at,omitempty"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       string    `json:"created_at,omitempty"`
	UpdatedAt       string    `json:"updated_at,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role.AtLeast(role.RoleAdmin)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"required,min=2"`
}

// AuthResponse is returned by login. Backends that issue bearer tokens put
// them in Token or AccessToken; cookie based ones leave both empty.
type AuthResponse struct {
	User        *User  `json:"user,omitempty"`
	Message     string `json:"message,omitempty"`
	Token       string `json:"token,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// BearerToken returns whichever token field the backend filled in.
func (a AuthResponse) BearerToken() string {
	if a.Token != "" {
		return a.Token
	}
	return a.AccessToken
}

type RegisterResponse struct {
	User                  *User  `json:"user,omitempty"`
	Message               string `json:"message"`
	VerificationEmailSent bool   `json:"verification_email_sent,omitempty"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type EmailAvailability struct {
	IsAvailable bool `json:"isAvailable"`
}

type VerifyEmailRequest struct {
	Token string `validate:"required"`
	Email string `validate:"required,email"`
}
