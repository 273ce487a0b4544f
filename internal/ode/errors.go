package ode

import (
	"errors"
	"fmt"
)

// Domain errors shared across the solver pipeline.
var (
	// ErrInvalidInput indicates a malformed input (negative source position,
	// non-positive trial radius, bad grid size).
	ErrInvalidInput = errors.New("ode: invalid input")

	// ErrNumericalDomain indicates a division blow-up (h = 0, or a sample
	// point coincident with a source).
	ErrNumericalDomain = errors.New("ode: numerical domain error")

	// ErrInvalidState indicates NaN or Inf appeared in a state vector.
	ErrInvalidState = errors.New("ode: invalid state (NaN or Inf detected)")

	// ErrGridSize indicates an angular grid with fewer than 2 points.
	ErrGridSize = errors.New("ode: angular grid needs at least 2 points")
)

// StepError wraps an error with the grid location where integration failed.
type StepError struct {
	Index   int
	Theta   float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (theta=%.6f): %v", e.Index, e.Theta, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
