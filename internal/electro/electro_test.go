package electro_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/electro"
	"github.com/san-kum/physlab/internal/mesh"
)

var _ = Describe("FieldAt", func() {
	Context("with a single point charge", func() {
		q := 2e-9
		charges := []electro.Charge{{X: 0.5, Y: -0.25, Q: q}}

		DescribeTable("matches Coulomb's law",
			func(r, angle float64) {
				x := 0.5 + r*math.Cos(angle)
				y := -0.25 + r*math.Sin(angle)
				ex, ey := electro.FieldAt(charges, x, y)

				expected := electro.CoulombK * math.Abs(q) / (r * r)
				Expect(math.Hypot(ex, ey)).To(BeNumerically("~", expected, expected*1e-12))
			},
			Entry("r = 0.1", 0.1, 0.0),
			Entry("r = 0.5", 0.5, math.Pi/3),
			Entry("r = 1", 1.0, math.Pi),
			Entry("r = 3", 3.0, -math.Pi/4),
		)

		It("points away from a positive charge", func() {
			ex, ey := electro.FieldAt(charges, 1.5, -0.25)
			Expect(ex).To(BeNumerically(">", 0))
			Expect(ey).To(BeNumerically("~", 0, 1e-9))
		})

		It("ignores the charge at its own location", func() {
			ex, ey := electro.FieldAt(charges, 0.5, -0.25)
			Expect(ex).To(BeZero())
			Expect(ey).To(BeZero())
		})
	})

	Context("with an opposite-charge dipole on the x axis", func() {
		charges, err := electro.ParseCharges(electro.DefaultCharges)

		It("parses", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(charges).To(HaveLen(2))
		})

		It("points along the axis at the midpoint", func() {
			ex, ey := electro.FieldAt(charges, 0, 0)
			Expect(math.Abs(ex)).To(BeNumerically(">", 0))
			Expect(math.Abs(ey)).To(BeNumerically("<", math.Abs(ex)*1e-12))
			// positive charge is at x = -1, so the field points toward +x
			Expect(ex).To(BeNumerically(">", 0))
		})

		It("has zero potential on the perpendicular bisector", func() {
			Expect(electro.PotentialAt(charges, 0, 1.3)).To(BeNumerically("~", 0, 1e-6))
		})
	})
})

var _ = Describe("Compute", func() {
	charges := []electro.Charge{{X: 0, Y: 0, Q: 1e-9}}
	m := mesh.Square(electro.DefaultExtent, 5)
	field := electro.Compute(charges, m)

	It("fills every mesh point", func() {
		Expect(field.Ex).To(HaveLen(m.Len()))
		Expect(field.Magnitude).To(HaveLen(m.Len()))
	})

	It("normalizes directions and leaves the singular point at zero", func() {
		for k, mag := range field.Magnitude {
			norm := math.Hypot(field.Ux[k], field.Uy[k])
			if mag == 0 {
				Expect(norm).To(BeZero())
			} else {
				Expect(norm).To(BeNumerically("~", 1, 1e-12))
			}
		}
		center := m.Index(2, 2)
		Expect(field.Magnitude[center]).To(BeZero())
	})

	It("samples a finite potential", func() {
		v := electro.Potential(charges, m)
		Expect(v.Z(2, 2)).To(BeZero())
		Expect(math.IsInf(v.Max(), 0)).To(BeFalse())
		Expect(v.Levels(electro.DefaultLevels)).To(HaveLen(electro.DefaultLevels))
	})
})

var _ = Describe("ParseCharges", func() {
	It("accepts whitespace and trailing separators", func() {
		charges, err := electro.ParseCharges("  0, 0 , 1e-9 ;; 1,1,-2e-9; ")
		Expect(err).NotTo(HaveOccurred())
		Expect(charges).To(Equal([]electro.Charge{{0, 0, 1e-9}, {1, 1, -2e-9}}))
	})

	DescribeTable("rejects malformed input",
		func(input string) {
			_, err := electro.ParseCharges(input)
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&electro.InputError{}))
		},
		Entry("empty", ""),
		Entry("missing value", "1,2"),
		Entry("extra value", "1,2,3,4"),
		Entry("not a number", "1,a,1e-9"),
	)

	It("round-trips through FormatCharges", func() {
		in := []electro.Charge{{-1, 0, 1e-9}, {1, 0.5, -3e-9}}
		out, err := electro.ParseCharges(electro.FormatCharges(in))
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})

	It("labels charges in nanocoulombs", func() {
		Expect(electro.Charge{Q: 1e-9}.Label()).To(Equal("+1.0 nC"))
		Expect(electro.Charge{Q: -2.5e-9}.Label()).To(Equal("-2.5 nC"))
	})
})
