// Package jwt reads the claims of tokens issued by the recipe backend.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/matt-dz/cookbook/internal/role"
)

var ErrNotJWT = errors.New("token is not a jwt")

type Claims struct {
	Subject   string
	Role      role.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ReadUnverified decodes the claims of rawToken without checking its
// signature. Only the backend holds the signing key, so the result is a hint
// for the client (when to stop sending the token) and never proof of identity.
func ReadUnverified(rawToken string) (Claims, error) {
	mapClaims := jwt.MapClaims{}
	token, _, err := jwt.NewParser().ParseUnverified(rawToken, mapClaims)
	if err != nil {
		return Claims{}, errors.Join(ErrNotJWT, err)
	}

	var claims Claims
	if sub, err := token.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := token.Claims.GetExpirationTime(); err != nil {
		return Claims{}, fmt.Errorf("reading exp claim: %w", err)
	} else if exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := token.Claims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	claims.Role = role.RoleUnknown
	if r, ok := mapClaims["role"].(string); ok {
		claims.Role = role.ToRole(r)
	}

	return claims, nil
}
