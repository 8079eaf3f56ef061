package payroll

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every per-call input rejection.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration is returned when a table set breaks its invariants.
	ErrConfiguration = errors.New("invalid configuration")
)

// Input error codes, surfaced as calculation message codes.
const (
	CodeInvalidSalary     = "INVALID_SALARY"
	CodeInvalidDependents = "INVALID_DEPENDENTS"
	CodeInvalidPension    = "INVALID_PENSION"
	CodeInvalidMode       = "INVALID_MODE"
)

// InputError describes which field of a CalculationInput was rejected.
type InputError struct {
	Field  string
	Code   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
