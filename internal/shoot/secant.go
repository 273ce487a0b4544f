package shoot

import (
	"fmt"
	"math"

	"github.com/san-kum/horizon/internal/ode"
)

const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 50
)

// ResidualFunc maps a trial initial radius to the boundary residual R(h0).
type ResidualFunc func(h0 float64) (float64, error)

// Options control a single secant solve. The zero value selects the
// defaults. OnIteration, when set, observes every accepted iterate.
type Options struct {
	Tolerance     float64
	MaxIterations int
	OnIteration   func(n int, h0, residual float64)
}

// Result is the converged root with its final residual and the number of
// secant updates performed.
type Result struct {
	Root       float64
	Residual   float64
	Iterations int
}

// Secant runs the standard two-seed secant iteration
//
//	x_{n+1} = x_n - R(x_n)·(x_n - x_{n-1}) / (R(x_n) - R(x_{n-1}))
//
// until |R| < tolerance. Candidates outside the physical domain (h0 ≤ 0)
// fail before the residual is evaluated; every solve is independent, nothing
// is retained between calls.
func Secant(fn ResidualFunc, x0, x1 float64, opts Options) (Result, error) {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	if x0 <= 0 || x1 <= 0 {
		return Result{}, fmt.Errorf("%w: secant seeds (%g, %g) must be positive", ode.ErrInvalidInput, x0, x1)
	}

	f0, err := fn(x0)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(f0) < opts.Tolerance {
		return Result{Root: x0, Residual: f0}, nil
	}

	f1, err := fn(x1)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(f1) < opts.Tolerance {
		return Result{Root: x1, Residual: f1}, nil
	}

	for n := 1; n <= opts.MaxIterations; n++ {
		denom := f1 - f0
		if denom == 0 {
			return Result{Root: x1, Residual: f1, Iterations: n - 1},
				fmt.Errorf("%w: at h0 = %g (residual %g)", ErrDivergence, x1, f1)
		}

		x2 := x1 - f1*(x1-x0)/denom
		if x2 <= 0 {
			return Result{Root: x1, Residual: f1, Iterations: n - 1},
				fmt.Errorf("%w: iteration %d produced non-physical radius h0 = %g", ode.ErrInvalidInput, n, x2)
		}

		f2, err := fn(x2)
		if err != nil {
			return Result{Root: x1, Residual: f1, Iterations: n - 1}, err
		}

		x0, f0 = x1, f1
		x1, f1 = x2, f2

		if opts.OnIteration != nil {
			opts.OnIteration(n, x1, f1)
		}

		if math.Abs(f1) < opts.Tolerance {
			return Result{Root: x1, Residual: f1, Iterations: n}, nil
		}
	}

	return Result{Root: x1, Residual: f1, Iterations: opts.MaxIterations},
		&NonConvergenceError{Iterations: opts.MaxIterations, LastRoot: x1, Residual: f1}
}
