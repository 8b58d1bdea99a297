// Package role contains utilities for user roles.
package role

import (
	"fmt"
	"math"
	"strings"
)

type Role int

const (
	RoleAdmin   Role = 200
	RoleUser    Role = 100
	RoleUnknown Role = math.MinInt
)

// String returns the role as the backend spells it.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleUser:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

func ToRole(role string) Role {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "ADMIN":
		return RoleAdmin
	case "USER":
		return RoleUser
	default:
		return RoleUnknown
	}
}

// AtLeast reports whether r grants everything required grants.
func (r Role) AtLeast(required Role) bool {
	return r >= required
}

func (r Role) MarshalText() ([]byte, error) {
	if r == RoleUnknown {
		return nil, fmt.Errorf("cannot encode unknown role")
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	*r = ToRole(string(text))
	if *r == RoleUnknown {
		return fmt.Errorf("unknown role: %q", string(text))
	}
	return nil
}
