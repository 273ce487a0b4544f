package steppers

import "github.com/san-kum/horizon/internal/ode"

// RK2 is the 2nd-order midpoint-trapezoid scheme: an Euler predictor followed
// by the corrector X_{i+1} = 0.5·(X_i + X_p + Δθ·F(X_p, θ_{i+1})), which is
// the trapezoidal average of F at the two endpoints rearranged so F(X_i, θ_i)
// is evaluated once.
type RK2 struct{}

func NewRK2() *RK2 {
	return &RK2{}
}

func (r *RK2) Step(sys ode.System, x ode.State, theta, dtheta float64) (ode.State, error) {
	k1, err := sys.Derive(x, theta)
	if err != nil {
		return nil, err
	}

	pred := make(ode.State, len(x))
	for i := range x {
		pred[i] = x[i] + dtheta*k1[i]
	}

	k2, err := sys.Derive(pred, theta+dtheta)
	if err != nil {
		return nil, err
	}

	next := make(ode.State, len(x))
	for i := range x {
		next[i] = 0.5 * (x[i] + pred[i] + dtheta*k2[i])
	}
	return next, nil
}
