package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/physics"
)

var _ = Describe("Projectile", func() {
	DescribeTable("landing time solves y0 + vy·t − ½g·t² = 0",
		func(p physics.Projectile) {
			tf, err := p.LandingTime()
			Expect(err).NotTo(HaveOccurred())
			Expect(tf).To(BeNumerically(">=", 0))

			residual := p.Y0 + p.VY*tf - 0.5*p.G*tf*tf
			Expect(residual).To(BeNumerically("~", 0, 1e-9))
			Expect(p.Position(tf).Y).To(BeNumerically("~", 0, 1e-9))
		},
		Entry("thrown upward", physics.Projectile{Y0: 2, VX: 1, VY: 5, G: 9.8}),
		Entry("thrown downward", physics.Projectile{Y0: 10, VX: -3, VY: -4, G: 9.8}),
		Entry("dropped", physics.Projectile{Y0: 5, G: 1.62}),
		Entry("launched from the ground", physics.Projectile{VY: 3, G: 9.8}),
	)

	It("reports no landing without gravity", func() {
		_, err := physics.Projectile{Y0: 1, VY: 1}.LandingTime()
		Expect(err).To(MatchError(physics.ErrNoLanding))
	})

	It("reports no landing when starting below ground moving away", func() {
		_, err := physics.Projectile{Y0: -10, VY: 1, G: 9.8}.LandingTime()
		Expect(err).To(MatchError(physics.ErrNoLanding))
	})

	It("samples the path from launch to landing", func() {
		p := physics.Projectile{X0: 1, Y0: 4, VX: 2, VY: 0, G: 9.8}
		pts, err := p.Path(50)
		Expect(err).NotTo(HaveOccurred())
		Expect(pts).To(HaveLen(50))
		Expect(pts[0]).To(Equal(physics.Point{X: 1, Y: 4}))
		Expect(pts[49].Y).To(BeNumerically("~", 0, 1e-9))
	})
})

var _ = Describe("Loop", func() {
	l := physics.NewLoop()

	It("is valid with default parameters", func() {
		Expect(l.Validate()).To(Succeed())
	})

	It("detaches above the track bottom at 7π/6", func() {
		p := l.DetachPoint()
		Expect(p.X).To(BeNumerically("~", -1.5, 1e-12))
		Expect(p.Y).To(BeNumerically("~", 3*(1+math.Sqrt(3)/2), 1e-12))
	})

	It("uses the critical detach speed √(gR/2)", func() {
		Expect(l.DetachSpeed()).To(BeNumerically("~", math.Sqrt(9.8*3/2), 1e-12))
		Expect(l.EntrySpeed()).To(BeNumerically(">", l.DetachSpeed()))
	})

	It("launches at the detach speed along α + π/2", func() {
		proj := l.Projectile()
		Expect(math.Hypot(proj.VX, proj.VY)).To(BeNumerically("~", l.DetachSpeed(), 1e-12))
		Expect(math.Atan2(proj.VY, proj.VX)).To(BeNumerically("~", -math.Pi/3, 1e-12))
	})

	It("lands after detaching", func() {
		proj := l.Projectile()
		tf, err := proj.LandingTime()
		Expect(err).NotTo(HaveOccurred())
		Expect(tf).To(BeNumerically(">", 0))
	})

	It("samples the arc from the bottom to the detach point", func() {
		arc := l.Arc(100)
		Expect(arc[0]).To(Equal(physics.Point{X: 0, Y: 0}))
		end := l.DetachPoint()
		Expect(arc[99].X).To(BeNumerically("~", end.X, 1e-12))
		Expect(arc[99].Y).To(BeNumerically("~", end.Y, 1e-12))
	})

	It("rejects a non-positive radius", func() {
		bad := *l
		bad.Radius = 0
		Expect(bad.Validate()).NotTo(Succeed())
	})
})
