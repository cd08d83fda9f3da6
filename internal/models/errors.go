package models

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("models: user not found")
	ErrItemNotFound      = errors.New("models: item not found")
	ErrCategoryNotFound  = errors.New("models: category not found")
	ErrRatingNotFound    = errors.New("models: rating not found")
	ErrDuplicateUsername = errors.New("models: duplicate username")
	ErrInvalidPassword   = errors.New("models: invalid password")
	ErrUnauthorized      = errors.New("models: unauthorized")
	ErrForbidden         = errors.New("models: forbidden")
)

// ValidationError reports a single malformed or out-of-range input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
