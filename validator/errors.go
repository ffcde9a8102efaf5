package validator

import (
	"errors"
	"strings"
)

// ErrMissingValidator is matched by errors.Is for every MissingValidatorError.
var ErrMissingValidator = errors.New("missing property validator")

// MissingValidatorError is returned by generated builders when Build is
// called before a validator was assigned to every property. It reports a
// configuration mistake, not invalid data.
type MissingValidatorError struct {
	// Validator is the name of the validator type being built.
	Validator string
	// Properties lists the unset properties in builder order.
	Properties []string
}

func (e *MissingValidatorError) Error() string {
	return e.Validator + ": no validator set for properties: " + strings.Join(e.Properties, ", ")
}

func (e *MissingValidatorError) Unwrap() error {
	return ErrMissingValidator
}
