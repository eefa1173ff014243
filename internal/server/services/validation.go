package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ValidationError describes a client input problem detected before any
// store call. It matches common.ErrorValidation under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput runs struct tags on in and converts the first failure to a
// ValidationError with a human readable message, e.g. "Mood is required".
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := verrs[0]
	field := fe.Field()
	msg := capitalize(field) + " is invalid"
	if fe.Tag() == "required" {
		msg = capitalize(field) + " is required"
	}
	return &ValidationError{Field: field, Message: msg}
}

// requireID rejects an empty identifier for the named entity ("vibe", "goal").
func requireID(id, entity string) error {
	if id == "" {
		return &ValidationError{Field: common.IDQueryParam, Message: "Missing " + entity + " ID"}
	}
	return nil
}

// knownID reports whether id could name a stored record at all. Anything
// that is not a UUID cannot, and is treated as not found.
func knownID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
