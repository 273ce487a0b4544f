package geometry

import (
	"fmt"

	"github.com/san-kum/horizon/internal/ode"
)

// SingularitySet is an ordered sequence of axial positions of point sources,
// each of bare mass 1. All entries must be non-negative; the mirror image of
// an off-origin source is implied, never stored.
type SingularitySet []float64

func (s SingularitySet) Clone() SingularitySet {
	c := make(SingularitySet, len(s))
	copy(c, s)
	return c
}

// Validate rejects negative source positions. A negative entry is a
// precondition failure, not something to silently correct.
func (s SingularitySet) Validate() error {
	for i, z := range s {
		if z < 0 {
			return fmt.Errorf("%w: source position z[%d] = %g must be non-negative", ode.ErrInvalidInput, i, z)
		}
	}
	return nil
}

// Sample holds the conformal factor and its partial derivatives at a single
// (h, θ) point. Samples are transient and recomputed on every evaluation;
// nothing is cached.
type Sample struct {
	Psi        float64
	DPsiDr     float64
	DPsiDtheta float64
}
