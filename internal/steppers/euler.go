package steppers

import "github.com/san-kum/horizon/internal/ode"

// Euler is the 1st-order explicit scheme: X_{i+1} = X_i + Δθ·F(X_i, θ_i).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, x ode.State, theta, dtheta float64) (ode.State, error) {
	dx, err := sys.Derive(x, theta)
	if err != nil {
		return nil, err
	}
	next := make(ode.State, len(x))
	for i := range x {
		next[i] = x[i] + dtheta*dx[i]
	}
	return next, nil
}
