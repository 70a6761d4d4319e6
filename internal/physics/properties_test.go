package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballpit/internal/physics"
)

func totalMomentum(bodies []*physics.Body) physics.Vec2 {
	var p physics.Vec2
	for _, b := range bodies {
		p = p.Add(b.Momentum())
	}
	return p
}

func ball(x, y, vx, vy, radius, mass float64) *physics.Body {
	b := physics.NewBody(physics.Vec2{X: x, Y: y}, radius, mass)
	b.Velocity = physics.Vec2{X: vx, Y: vy}
	return b
}

var _ = Describe("body collisions", func() {
	It("conserves momentum for an elastic collision", func() {
		bodies := []*physics.Body{
			ball(0, 0, 2, 0.5, 0.1, 1),
			ball(15, 3, -1, 0, 0.1, 3),
		}
		before := totalMomentum(bodies)

		physics.ResolveBodyCollisions(bodies, 1.0)

		after := totalMomentum(bodies)
		Expect(after.X).To(BeNumerically("~", before.X, 1e-9))
		Expect(after.Y).To(BeNumerically("~", before.Y, 1e-9))
		Expect(bodies[0].Velocity).NotTo(Equal(physics.Vec2{X: 2, Y: 0.5}))
	})

	DescribeTable("never increases relative normal speed",
		func(e float64) {
			a := ball(0, 0, 3, 1, 0.1, 2)
			b := ball(12, 9, -2, 0.5, 0.1, 0.5)
			n := b.Position.Sub(a.Position).Scale(1 / b.Position.Sub(a.Position).Len())
			pre := b.Velocity.Sub(a.Velocity).Dot(n)
			Expect(pre).To(BeNumerically("<", 0))

			physics.ResolveBodyCollisions([]*physics.Body{a, b}, e)

			post := b.Velocity.Sub(a.Velocity).Dot(n)
			Expect(post).To(BeNumerically(">=", -1e-12))
			Expect(post).To(BeNumerically("<=", e*-pre+1e-12))
		},
		Entry("inelastic", 0.0),
		Entry("soft", 0.5),
		Entry("bouncy", 0.9),
	)

	It("leaves separating pairs untouched", func() {
		a := ball(0, 0, -1, 0, 0.1, 1)
		b := ball(15, 0, 1, 0, 0.1, 1)
		aBefore, bBefore := *a, *b

		physics.ResolveBodyCollisions([]*physics.Body{a, b}, physics.BallRestitution)

		Expect(*a).To(Equal(aBefore))
		Expect(*b).To(Equal(bBefore))
	})

	It("leaves pairs at or beyond contact distance untouched", func() {
		a := ball(0, 0, 5, 0, 0.1, 1)
		b := ball(20, 0, -5, 0, 0.1, 1)
		aBefore, bBefore := *a, *b

		physics.ResolveBodyCollisions([]*physics.Body{a, b}, physics.BallRestitution)

		Expect(*a).To(Equal(aBefore))
		Expect(*b).To(Equal(bBefore))
	})

	It("skips bodies with coincident centers (known limitation)", func() {
		a := ball(50, 50, 1, 0, 0.1, 1)
		b := ball(50, 50, -1, 0, 0.1, 1)
		aBefore, bBefore := *a, *b

		physics.ResolveBodyCollisions([]*physics.Body{a, b}, physics.BallRestitution)

		Expect(*a).To(Equal(aBefore))
		Expect(*b).To(Equal(bBefore))
	})

	It("reverses a head-on approach and separates to contact distance", func() {
		a := ball(0, 0, 1, 0, 0.1, 1)
		b := ball(15, 0, -1, 0, 0.1, 1)
		Expect(a.RadiusRender).To(BeNumerically("~", 10, 1e-12))

		physics.ResolveBodyCollisions([]*physics.Body{a, b}, 0.9)

		Expect(a.Velocity.X).To(BeNumerically("~", -0.9, 1e-12))
		Expect(b.Velocity.X).To(BeNumerically("~", 0.9, 1e-12))
		Expect(a.Velocity.Y).To(Equal(0.0))
		Expect(b.Velocity.Y).To(Equal(0.0))
		Expect(b.Position.Sub(a.Position).Len()).To(BeNumerically("~", 20, 1e-12))
	})
})

var _ = Describe("boundary collisions", func() {
	var (
		bounds physics.Bounds
		params physics.Params
	)

	BeforeEach(func() {
		bounds = physics.Bounds{Width: 800, Height: 600}
		params = physics.DefaultParams(bounds)
		params.DragCoefficient = 0
	})

	It("snaps a slow floor contact to rest and stays there", func() {
		b := ball(400, 591, 0, 0.3, 0.1, 1)

		physics.ResolveBoundaryCollisions([]*physics.Body{b}, bounds, params, 1.0/60)
		Expect(b.Velocity.Y).To(Equal(0.0))
		Expect(b.Position.Y).To(Equal(590.0))

		physics.ResolveBoundaryCollisions([]*physics.Body{b}, bounds, params, 1.0/60)
		Expect(b.Velocity.Y).To(Equal(0.0))
		Expect(b.Position.Y).To(Equal(bounds.Height - b.RadiusRender))
	})

	It("integrates gravity before the floor is checked", func() {
		params.Friction = 0
		b := ball(400, bounds.Height-10-physics.UnitScale, 0, 0, 0.1, 1)

		physics.Step([]*physics.Body{b}, params, 0.1)

		Expect(b.Velocity.Y).To(BeNumerically("~", 0.98, 1e-12))
		Expect(b.Position.Y).To(BeNumerically("~", 490+0.98*0.1*physics.UnitScale, 1e-9))
		Expect(b.Position.Y + b.RadiusRender).To(BeNumerically("<", bounds.Height))
	})

	It("brings a sliding body to exactly zero without reversing", func() {
		params.Friction = 0.5
		params.Bounds = physics.Bounds{Width: 2000, Height: 600}
		b := ball(100, 590, 5, 0, 0.1, 1)
		bodies := []*physics.Body{b}

		stopped := false
		for i := 0; i < 600; i++ {
			physics.Step(bodies, params, 1.0/60)
			Expect(b.Velocity.X).To(BeNumerically(">=", 0))
			if b.Velocity.X == 0 {
				stopped = true
			}
			if stopped {
				Expect(b.Velocity.X).To(Equal(0.0))
			}
		}
		Expect(stopped).To(BeTrue())
	})
})
