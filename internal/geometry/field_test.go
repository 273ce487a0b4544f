package geometry_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/horizon/internal/geometry"
	"github.com/san-kum/horizon/internal/ode"
)

var _ = Describe("Evaluate", func() {
	Context("with a single source at the origin", func() {
		sources := geometry.SingularitySet{0}

		It("reduces to the Schwarzschild closed form", func() {
			h := 0.5
			for _, theta := range []float64{0, 0.3, math.Pi / 4, math.Pi / 2} {
				s, err := geometry.Evaluate(h, theta, sources)
				Expect(err).NotTo(HaveOccurred())
				Expect(s.Psi).To(BeNumerically("~", 1+0.5/h, 1e-14))
				Expect(s.DPsiDr).To(BeNumerically("~", -0.5/(h*h), 1e-14))
				Expect(s.DPsiDtheta).To(BeNumerically("~", 0, 1e-16))
			}
		})

		It("is independent of angle", func() {
			a, err := geometry.Evaluate(0.7, 0.2, sources)
			Expect(err).NotTo(HaveOccurred())
			b, err := geometry.Evaluate(0.7, 1.3, sources)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Psi).To(Equal(b.Psi))
			Expect(a.DPsiDr).To(Equal(b.DPsiDr))
		})
	})

	Context("with an off-origin source", func() {
		sources := geometry.SingularitySet{0.75}

		It("includes the mirror image at -z", func() {
			// On the equator both images are equidistant; the cross terms
			// cancel exactly.
			s, err := geometry.Evaluate(0.9, math.Pi/2, sources)
			Expect(err).NotTo(HaveOccurred())

			d := math.Hypot(0.9, 0.75)
			Expect(s.Psi).To(BeNumerically("~", 1+1.0/d, 1e-14))
			Expect(s.DPsiDtheta).To(BeNumerically("~", 0, 1e-15))
		})

		It("is equatorially symmetric in psi and antisymmetric in the theta derivative", func() {
			theta := 0.4
			above, err := geometry.Evaluate(0.9, theta, sources)
			Expect(err).NotTo(HaveOccurred())
			below, err := geometry.Evaluate(0.9, math.Pi-theta, sources)
			Expect(err).NotTo(HaveOccurred())

			Expect(below.Psi).To(BeNumerically("~", above.Psi, 1e-14))
			Expect(below.DPsiDr).To(BeNumerically("~", above.DPsiDr, 1e-14))
			Expect(below.DPsiDtheta).To(BeNumerically("~", -above.DPsiDtheta, 1e-14))
		})
	})

	Context("with several sources", func() {
		It("accumulates contributions additively over the flat background", func() {
			both, err := geometry.Evaluate(1.1, 0.6, geometry.SingularitySet{0, 0.5})
			Expect(err).NotTo(HaveOccurred())
			first, err := geometry.Evaluate(1.1, 0.6, geometry.SingularitySet{0})
			Expect(err).NotTo(HaveOccurred())
			second, err := geometry.Evaluate(1.1, 0.6, geometry.SingularitySet{0.5})
			Expect(err).NotTo(HaveOccurred())

			Expect(both.Psi).To(BeNumerically("~", first.Psi+second.Psi-1, 1e-14))
			Expect(both.DPsiDr).To(BeNumerically("~", first.DPsiDr+second.DPsiDr, 1e-14))
			Expect(both.DPsiDtheta).To(BeNumerically("~", first.DPsiDtheta+second.DPsiDtheta, 1e-14))
		})
	})

	Context("with a malformed source set", func() {
		It("fails with an invalid input error", func() {
			_, err := geometry.Evaluate(0.5, 0.3, geometry.SingularitySet{0.2, -0.1})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ode.ErrInvalidInput)).To(BeTrue())
		})
	})
})

var _ = Describe("SingularitySet", func() {
	It("validates non-negative sets", func() {
		Expect(geometry.SingularitySet{}.Validate()).To(Succeed())
		Expect(geometry.SingularitySet{0, 0.75, 1.5}.Validate()).To(Succeed())
	})

	It("clones without aliasing", func() {
		orig := geometry.SingularitySet{0.1, 0.2}
		c := orig.Clone()
		c[0] = 9
		Expect(orig[0]).To(Equal(0.1))
	})
})
