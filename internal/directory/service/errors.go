package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmailTaken signals a signup against an email that already has an
	// account (after normalization).
	ErrEmailTaken = errors.New("account with this email already exists")

	// ErrNotAdmin signals a mutating operation attempted by a non-admin
	// actor.
	ErrNotAdmin = errors.New("restricted to administrators only")

	// ErrAccountNotFound signals that no account exists with the given id.
	ErrAccountNotFound = errors.New("account not found")
)

// ValidationError reports malformed or missing input. Field keys are the
// lower-cased struct field names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, field+": "+reason)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// newValidationError converts validator violations into a ValidationError.
func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, v := range verrs {
		field := strings.ToLower(v.Field())
		switch v.Tag() {
		case "required":
			fields[field] = "required field missing"
		case "email":
			fields[field] = "malformed email address"
		case "min":
			fields[field] = fmt.Sprintf("must be at least %s characters", v.Param())
		case "oneof":
			fields[field] = "must be one of: " + v.Param()
		default:
			fields[field] = "invalid value"
		}
	}
	return &ValidationError{Fields: fields}
}
