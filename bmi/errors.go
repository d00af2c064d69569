package bmi

import (
	"errors"
	"fmt"
)

// Error kinds reported by components. Match with errors.Is.
var (
	// ErrMalformedInput indicates a variable name whose metadata suffix cannot be parsed.
	ErrMalformedInput = errors.New("bmi: malformed input")

	// ErrInvalidType indicates a type name outside the type catalog.
	ErrInvalidType = errors.New("bmi: invalid type")

	// ErrNamingCollision indicates an alias that clashes with a variable name, or vice versa.
	ErrNamingCollision = errors.New("bmi: naming collision")

	// ErrNotFound indicates an operation on a name that was never registered.
	ErrNotFound = errors.New("bmi: not found")

	// ErrIllegalArgument indicates a bad count or buffer passed to a variable operation.
	ErrIllegalArgument = errors.New("bmi: illegal argument")

	// ErrNotImplemented indicates a method the component deliberately does not support.
	ErrNotImplemented = errors.New("bmi: not implemented")
)

// VarError records the operation and variable name behind a failure.
type VarError struct {
	Op      string
	Name    string
	Wrapped error
}

func (e *VarError) Error() string {
	if e.Name == "" {
		return e.Op + ": " + e.Wrapped.Error()
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Wrapped)
}

func (e *VarError) Unwrap() error {
	return e.Wrapped
}
