package shoot

import (
	"errors"
	"fmt"
)

var (
	// ErrDivergence indicates the secant denominator collapsed to zero; the
	// iteration stalled and cannot proceed. The caller may retry with
	// different seeds, the solver does not.
	ErrDivergence = errors.New("shoot: secant denominator vanished (stalled iteration)")

	// ErrNonConvergence indicates the iteration budget ran out before the
	// residual dropped below tolerance.
	ErrNonConvergence = errors.New("shoot: iteration budget exhausted")

	// ErrNoBracket indicates a residual scan found no sign change.
	ErrNoBracket = errors.New("shoot: no sign change found in scanned range")
)

// NonConvergenceError carries the last iterate so the caller can decide
// whether to loosen the tolerance or widen the seed bracket.
type NonConvergenceError struct {
	Iterations int
	LastRoot   float64
	Residual   float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("shoot: no convergence after %d iterations (last h0 = %.12g, residual = %.3e)",
		e.Iterations, e.LastRoot, e.Residual)
}

func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}
