package horizon

import (
	"fmt"
	"math"

	"github.com/san-kum/horizon/internal/geometry"
	"github.com/san-kum/horizon/internal/ode"
)

// axisEps is the window around the poles and the equator inside which the
// cotangent term is forced to exactly zero. The coordinate singularity of
// cot θ at the poles must not propagate into the derivative; at θ=π/2 the
// floating-point cosine is ~6e-17 rather than 0, so the equator gets the
// same treatment.
const axisEps = 1e-16

// ExpansionRHS is the right-hand side of the horizon equation
//
//	h'' = 2h - cotθ·h'/C² + 4h²/(ψ·C²)·(∂ψ/∂r - ∂ψ/∂θ·h'/h²) + 3h'²/h
//
// with C² = 1/(1 + (h'/h)²), for a fixed set of punctures.
type ExpansionRHS struct {
	sources geometry.SingularitySet
}

// NewExpansionRHS validates the source set once at construction; negative
// positions never reach an evaluation.
func NewExpansionRHS(sources geometry.SingularitySet) (*ExpansionRHS, error) {
	if err := sources.Validate(); err != nil {
		return nil, err
	}
	return &ExpansionRHS{sources: sources.Clone()}, nil
}

func (r *ExpansionRHS) StateDim() int { return 2 }

func (r *ExpansionRHS) Derive(x ode.State, theta float64) (ode.State, error) {
	h, dh := x[0], x[1]
	if h <= 0 {
		return nil, fmt.Errorf("%w: radius h = %g at theta = %g", ode.ErrNumericalDomain, h, theta)
	}

	f, err := geometry.Evaluate(h, theta, r.sources)
	if err != nil {
		return nil, err
	}

	c2 := 1.0 / (1.0 + (dh/h)*(dh/h))

	cotTerm := 0.0
	if !onAxis(theta) {
		sinT, cosT := math.Sincos(theta)
		cotTerm = cosT / sinT * dh / c2
	}

	ddh := 2*h - cotTerm + 4*h*h/(f.Psi*c2)*(f.DPsiDr-f.DPsiDtheta*dh/(h*h)) + 3*dh*dh/h
	return ode.State{dh, ddh}, nil
}

func onAxis(theta float64) bool {
	return math.Abs(theta) < axisEps ||
		math.Abs(theta-math.Pi/2) < axisEps ||
		math.Abs(theta-math.Pi) < axisEps
}
