package geometry

import "math"

// Evaluate computes the conformal factor ψ and its partial derivatives at the
// point (r=h, θ) in the (ρ = h sinθ, ζ = h cosθ) half-plane. The flat
// background contributes ψ = 1; each source at z adds 0.5/d with
// d the Euclidean distance to (0, z), and for z > 0 the mirror image at -z is
// added with the sign of the dψ/dθ cross term flipped.
//
// A query point coinciding exactly with a source position divides by zero and
// yields Inf; callers keep the evaluated surface off the sources by
// construction, the field does not guard.
func Evaluate(h, theta float64, sources SingularitySet) (Sample, error) {
	if err := sources.Validate(); err != nil {
		return Sample{}, err
	}

	sinT, cosT := math.Sincos(theta)
	s := Sample{Psi: 1}
	for _, z := range sources {
		addSource(&s, h, z, sinT, cosT)
		if z > 0 {
			addSource(&s, h, -z, sinT, cosT)
		}
	}
	return s, nil
}

// addSource folds one point source at axial position z into the sample.
// The dψ/dθ term is linear in h, matching the source derivation.
func addSource(s *Sample, h, z, sinT, cosT float64) {
	d := math.Hypot(h*sinT, h*cosT-z)
	d3 := d * d * d

	s.Psi += 0.5 / d
	s.DPsiDr -= 0.5 * (h - z*cosT) / d3
	s.DPsiDtheta -= 0.5 * h * z * sinT / d3
}
