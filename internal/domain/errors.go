package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrExternalService = errors.New("external service error")

	ErrSoldOut          = fmt.Errorf("%w: no seats left in this fare class", ErrConflict)
	ErrInvalidSelection = fmt.Errorf("%w: meal is not offered on this fare", ErrValidation)
	ErrExternalTimeout  = fmt.Errorf("%w: upstream timed out", ErrExternalService)
)

// Invalid builds an error that matches ErrValidation.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Conflict builds an error that matches ErrConflict.
func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// NotFound builds an error that matches ErrNotFound.
func NotFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
