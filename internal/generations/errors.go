package generations

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates an entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates access is not allowed.
	ErrForbidden = errors.New("forbidden")

	// ErrEmptyResult indicates the model returned no usable resume text.
	ErrEmptyResult = errors.New("model returned empty result")
)

// ValidationError reports which mandatory profile fields are missing or
// which enum value was rejected.
type ValidationError struct {
	Reason  string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	return e.Reason
}
