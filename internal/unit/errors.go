package unit

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry lookups and conversion.
var (
	// ErrUnknownUnit indicates a symbol with no registry entry.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrIncompatibleUnits indicates a conversion across categories.
	ErrIncompatibleUnits = errors.New("incompatible unit categories")
	// ErrMalformedValue indicates a numeric token that does not parse as a float.
	ErrMalformedValue = errors.New("malformed numeric value")
)

// InvalidUnitError records a failed registry lookup with the input as
// the caller gave it (not lowercased).
type InvalidUnitError struct {
	Input string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Input)
}

// Unwrap returns the sentinel for use with errors.Is.
func (e *InvalidUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// IncompatibleUnitsError records both categories of a rejected
// cross-category conversion.
type IncompatibleUnitsError struct {
	From Category
	To   Category
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// Unwrap returns the sentinel for use with errors.Is.
func (e *IncompatibleUnitsError) Unwrap() error {
	return ErrIncompatibleUnits
}

// MalformedValueError records a value token that failed to parse.
type MalformedValueError struct {
	Token string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value %q", e.Token)
}

// Unwrap returns the sentinel for use with errors.Is.
func (e *MalformedValueError) Unwrap() error {
	return ErrMalformedValue
}
