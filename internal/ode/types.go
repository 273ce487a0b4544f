package ode

import "math"

// State is a vector of dependent variables advanced in angle. For the
// horizon equation it holds (h, dh/dθ).
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is the right-hand side of a first-order ODE system dX/dθ = F(X, θ).
// Derive must be a pure function of its arguments; domain violations
// (for the horizon equation, h ≤ 0) are reported as errors, never as
// silently substituted values.
type System interface {
	Derive(x State, theta float64) (State, error)
	StateDim() int
}

// Stepper advances a state by one fixed step. Errors from the embedded
// Derive calls propagate unchanged.
type Stepper interface {
	Step(sys System, x State, theta, dtheta float64) (State, error)
}

// Grid is a uniform angular grid from 0 to π/2 inclusive, shared read-only
// across integration calls.
type Grid struct {
	Points []float64
	Step   float64
}

// NewGrid builds an n-point grid with step (π/2)/(n-1). The last point is
// pinned to exactly π/2 so the equator regularity guard in the RHS fires.
func NewGrid(n int) (*Grid, error) {
	if n < 2 {
		return nil, ErrGridSize
	}
	step := (math.Pi / 2) / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = float64(i) * step
	}
	pts[n-1] = math.Pi / 2
	return &Grid{Points: pts, Step: step}, nil
}

func (g *Grid) Len() int { return len(g.Points) }
