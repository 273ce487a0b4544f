package shoot_test

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/horizon/internal/geometry"
	"github.com/san-kum/horizon/internal/horizon"
	"github.com/san-kum/horizon/internal/ode"
	"github.com/san-kum/horizon/internal/shoot"
	"github.com/san-kum/horizon/internal/steppers"
)

func residualFor(t *testing.T, n int, step ode.Stepper, sources geometry.SingularitySet) shoot.ResidualFunc {
	t.Helper()
	grid, err := ode.NewGrid(n)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	it := horizon.NewIntegrator(grid, step)
	return func(h0 float64) (float64, error) {
		return it.Residual(h0, sources)
	}
}

func TestSolveSchwarzschild(t *testing.T) {
	for _, name := range steppers.Names() {
		t.Run(name, func(t *testing.T) {
			step, err := steppers.New(name)
			if err != nil {
				t.Fatalf("steppers.New: %v", err)
			}
			fn := residualFor(t, 201, step, geometry.SingularitySet{0})

			res, err := shoot.Secant(fn, 0.4, 0.6, shoot.Options{Tolerance: 1e-10})
			if err != nil {
				t.Fatalf("Secant: %v", err)
			}
			if math.Abs(res.Root-0.5) > 1e-8 {
				t.Errorf("h0* = %.12f, expected 0.5", res.Root)
			}
			if res.Iterations >= 20 {
				t.Errorf("took %d iterations", res.Iterations)
			}
		})
	}
}

func TestSolveMirrorPair(t *testing.T) {
	// Two equal punctures at z = ±0.75. The common horizon radius must lie
	// strictly between the single-puncture value 0.5 and twice that, and
	// the curve must close regularly at both boundaries.
	sources := geometry.SingularitySet{0.75}
	fn := residualFor(t, 401, steppers.NewRK2(), sources)

	samples, err := shoot.Scan(context.Background(), fn, 0.6, 1.25, 14, 4)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	lo, hi, err := shoot.FindBracket(samples)
	if err != nil {
		t.Fatalf("FindBracket: %v", err)
	}

	res, err := shoot.Secant(fn, lo, hi, shoot.Options{Tolerance: 1e-10, MaxIterations: 60})
	if err != nil {
		t.Fatalf("Secant: %v", err)
	}
	if !(res.Root > 0.5 && res.Root < 1.0) {
		t.Errorf("h0* = %.6f outside (0.5, 1.0)", res.Root)
	}

	grid, err := ode.NewGrid(401)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	traj, err := horizon.NewIntegrator(grid, steppers.NewRK2()).Integrate(res.Root, sources)
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	if traj[0][1] != 0 {
		t.Errorf("axis slope %.3e, the Neumann condition is imposed exactly", traj[0][1])
	}
	if math.Abs(traj.Final()[1]) > 1e-6 {
		t.Errorf("equator slope %.3e not within tolerance of 0", traj.Final()[1])
	}
}
