// Package password contains the rules a new account password must satisfy.
package password

import (
	"errors"
	"regexp"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	minimumLength      = 6
	minimumEntropyBits = 30
)

var (
	letterRe = regexp.MustCompile(`\pL`)
	digitRe  = regexp.MustCompile(`[0-9]`)
)

var (
	ErrTooShort = errors.New("password must be at least 6 characters long")
	ErrNoLetter = errors.New("password must contain at least one letter")
	ErrNoDigit  = errors.New("password must contain at least one digit")
	ErrTooWeak  = errors.New("password is too weak")
)

func ValidatePassword(password string) error {
	if len([]rune(password)) < minimumLength {
		return ErrTooShort
	}

	if !letterRe.MatchString(password) {
		return ErrNoLetter
	}
	if !digitRe.MatchString(password) {
		return ErrNoDigit
	}

	if err := passwordvalidator.Validate(password, minimumEntropyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}

	return nil
}
