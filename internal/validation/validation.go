// Package validation checks user input against the declarative rules carried
// in struct tags and reports every violation at once.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/matt-dz/cookbook/internal/password"
)

const dateLayout = time.DateOnly

// Violation is one failed rule.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations is returned as an error when any rule fails.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return strings.Join(msgs, "; ")
}

// Err returns v as an error, or nil when there are no violations.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Has reports whether field failed any rule.
func (v Violations) Has(field string) bool {
	for _, violation := range v {
		if violation.Field == field {
			return true
		}
	}
	return false
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)
		_ = validate.RegisterValidation("password", validPassword)
		_ = validate.RegisterValidation("dateOnOrAfter", dateOnOrAfter)
	})
	return validate
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name[:1]) + f.Name[1:]
	}
	return name
}

func validPassword(fl validator.FieldLevel) bool {
	return password.ValidatePassword(fl.Field().String()) == nil
}

// dateOnOrAfter passes when the field is a date no earlier than the named
// sibling. Unparsable dates are left to the datetime rule.
func dateOnOrAfter(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}
	other := parent.FieldByName(fl.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}

	end, err := time.Parse(dateLayout, fl.Field().String())
	if err != nil {
		return true
	}
	start, err := time.Parse(dateLayout, other.String())
	if err != nil {
		return true
	}
	return !end.Before(start)
}

// Check validates v and returns every violation found.
func Check(v any) Violations {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return Violations{{Rule: "invalid", Message: err.Error()}}
	}

	out := make(Violations, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := fieldPath(e.Namespace())
		out = append(out, Violation{
			Field:   field,
			Rule:    e.Tag(),
			Message: message(field, e),
		})
	}
	return out
}

// fieldPath drops the root type from a namespace such as
// "Recipe.ingredients[0].name".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if e.Kind() == reflect.Slice || e.Kind() == reflect.Map {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, e.Param())
		}
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", field, e.Param())
	case "dateOnOrAfter":
		return fmt.Sprintf("%s must not be before %s", field, snakeCase(e.Param()))
	case "password":
		err := password.ValidatePassword(fmt.Sprint(e.Value()))
		if errors.Is(err, password.ErrTooWeak) {
			return password.ErrTooWeak.Error()
		}
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("%s is not a valid password", field)
	case "validateFn":
		if v, ok := e.Value().(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return err.Error()
			}
		}
		return fmt.Sprintf("%s is invalid", field)
	default:
		return fmt.Sprintf("%s failed the %s rule", field, e.Tag())
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
