package horizon

import (
	"fmt"

	"github.com/san-kum/horizon/internal/geometry"
	"github.com/san-kum/horizon/internal/ode"
)

// Trajectory is the state-vector sequence over the angular grid, one entry
// per grid point in angle-increasing order. It is owned by the caller that
// requested the integration; successive calls never alias.
type Trajectory []ode.State

// Radii returns the h component per grid point.
func (t Trajectory) Radii() []float64 {
	r := make([]float64, len(t))
	for i, x := range t {
		r[i] = x[0]
	}
	return r
}

// Slopes returns the dh/dθ component per grid point.
func (t Trajectory) Slopes() []float64 {
	s := make([]float64, len(t))
	for i, x := range t {
		s[i] = x[1]
	}
	return s
}

func (t Trajectory) Final() ode.State {
	return t[len(t)-1]
}

// Integrator drives a stepper over the angular grid. The grid is shared
// read-only; the integrator itself holds no per-run state.
type Integrator struct {
	grid *ode.Grid
	step ode.Stepper
}

func NewIntegrator(grid *ode.Grid, step ode.Stepper) *Integrator {
	return &Integrator{grid: grid, step: step}
}

// Integrate runs the initial-value problem from H(0) = (h0, 0): the Neumann
// condition dh/dθ(0) = 0 is imposed exactly, not solved for. A failure
// partway invalidates the whole run; no truncated trajectory is returned.
func (it *Integrator) Integrate(h0 float64, sources geometry.SingularitySet) (Trajectory, error) {
	if h0 <= 0 {
		return nil, fmt.Errorf("%w: initial radius h0 = %g must be positive", ode.ErrInvalidInput, h0)
	}

	rhs, err := NewExpansionRHS(sources)
	if err != nil {
		return nil, err
	}

	n := it.grid.Len()
	traj := make(Trajectory, 0, n)
	x := ode.State{h0, 0}
	traj = append(traj, x.Clone())

	for i := 0; i < n-1; i++ {
		next, err := it.step.Step(rhs, x, it.grid.Points[i], it.grid.Step)
		if err != nil {
			return nil, &ode.StepError{Index: i, Theta: it.grid.Points[i], Wrapped: err}
		}
		if !next.IsValid() {
			return nil, &ode.StepError{Index: i, Theta: it.grid.Points[i], Wrapped: ode.ErrInvalidState}
		}
		x = next
		traj = append(traj, x.Clone())
	}

	return traj, nil
}

// Residual integrates the trial curve and returns dh/dθ at θ=π/2, the
// violation of the far Neumann boundary condition. A nonzero value means the
// trial radius does not close the horizon curve regularly.
func (it *Integrator) Residual(h0 float64, sources geometry.SingularitySet) (float64, error) {
	traj, err := it.Integrate(h0, sources)
	if err != nil {
		return 0, err
	}
	return traj.Final()[1], nil
}
