package dto

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports one violated constraint on an input field.
type ValidationError struct {
	Field   string `json:"field" example:"questionText"`
	Message string `json:"message" example:"must not be blank"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the set of constraint violations found on one input.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field is among the violations.
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// AsValidationErrors extracts the validation errors carried by err, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs, true
	}
	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}

// SerializationError is returned when a value cannot be encoded to JSON.
// It indicates a server-side fault, not a client mistake.
type SerializationError struct {
	Type string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Type, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
