package horizon

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/horizon/internal/geometry"
	"github.com/san-kum/horizon/internal/ode"
)

func TestSchwarzschildFixedPoint(t *testing.T) {
	rhs, err := NewExpansionRHS(geometry.SingularitySet{0})
	if err != nil {
		t.Fatalf("NewExpansionRHS: %v", err)
	}

	// h ≡ 0.5 is the exact analytic horizon for a single puncture at the
	// origin; the derivative vector must vanish at every angle.
	for _, theta := range []float64{0, 0.2, math.Pi / 4, 1.2, math.Pi / 2} {
		dx, err := rhs.Derive(ode.State{0.5, 0}, theta)
		if err != nil {
			t.Fatalf("Derive(theta=%g): %v", theta, err)
		}
		if math.Abs(dx[0]) > 1e-14 || math.Abs(dx[1]) > 1e-14 {
			t.Errorf("theta=%g: expected vanishing derivative, got (%.3e, %.3e)", theta, dx[0], dx[1])
		}
	}
}

func TestAxisRegularity(t *testing.T) {
	rhs, err := NewExpansionRHS(geometry.SingularitySet{0})
	if err != nil {
		t.Fatalf("NewExpansionRHS: %v", err)
	}

	// For a source at the origin the field is angle-independent, so any
	// angle dependence of the derivative comes from the cot term alone.
	// With a nonzero slope the guarded angles must agree exactly and stay
	// finite, while an unguarded angle picks up the cot contribution.
	x := ode.State{0.5, 0.3}

	atPole, err := rhs.Derive(x, 0)
	if err != nil {
		t.Fatalf("Derive(0): %v", err)
	}
	atEquator, err := rhs.Derive(x, math.Pi/2)
	if err != nil {
		t.Fatalf("Derive(pi/2): %v", err)
	}
	if !atPole.IsValid() || !atEquator.IsValid() {
		t.Fatal("derivative not finite at guarded angles")
	}
	if atPole[1] != atEquator[1] {
		t.Errorf("cot contribution not zeroed: pole %.17g vs equator %.17g", atPole[1], atEquator[1])
	}

	interior, err := rhs.Derive(x, 0.7)
	if err != nil {
		t.Fatalf("Derive(0.7): %v", err)
	}
	if interior[1] == atPole[1] {
		t.Error("cot term missing away from the poles")
	}
}

func TestNonPositiveRadius(t *testing.T) {
	rhs, err := NewExpansionRHS(geometry.SingularitySet{0})
	if err != nil {
		t.Fatalf("NewExpansionRHS: %v", err)
	}

	for _, h := range []float64{0, -0.5} {
		if _, err := rhs.Derive(ode.State{h, 0.1}, 0.4); !errors.Is(err, ode.ErrNumericalDomain) {
			t.Errorf("h=%g: expected numerical domain error, got %v", h, err)
		}
	}
}

func TestNegativeSourceRejected(t *testing.T) {
	if _, err := NewExpansionRHS(geometry.SingularitySet{0.5, -0.75}); !errors.Is(err, ode.ErrInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestDeriveIsPure(t *testing.T) {
	rhs, err := NewExpansionRHS(geometry.SingularitySet{0.75})
	if err != nil {
		t.Fatalf("NewExpansionRHS: %v", err)
	}

	x := ode.State{0.9, -0.05}
	a, err := rhs.Derive(x, 0.6)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := rhs.Derive(x, 0.6)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if a[0] != b[0] || a[1] != b[1] {
		t.Error("repeated evaluation differs")
	}
}
