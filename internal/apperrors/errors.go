package apperrors

import "errors"

// ErrNotFound is returned when a referenced thread or message does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a required field is missing or empty.
// Callers can correct the request; it is never retried.
var ErrValidation = errors.New("invalid input")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
