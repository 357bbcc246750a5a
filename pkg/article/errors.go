package article

import (
	"errors"
	"fmt"
)

// ErrValidation classifies every rejected save.
var ErrValidation = errors.New("validation failed")

// ReasonMissing is reported when a required field is empty or absent.
const ReasonMissing = "missing"

// ValidationError describes a field that failed a constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s is %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
