package physics

import "math"

// ResolveBodyCollisions applies a normal impulse and positional correction to
// every overlapping, approaching pair. Pairs are visited once each in index
// order; this is O(n²) with no broad phase.
//
// Pairs with exactly coincident centers are skipped: there is no normal to
// push along, so stacked bodies stay stacked.
func ResolveBodyCollisions(bodies []*Body, restitution float64) {
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			resolvePair(a, bodies[j], restitution)
		}
	}
}

func resolvePair(a, b *Body, e float64) {
	delta := b.Position.Sub(a.Position)
	d := delta.Len()
	minDist := a.RadiusRender + b.RadiusRender
	if d >= minDist || d == 0 {
		return
	}

	n := delta.Scale(1 / d)

	// already separating
	vn := b.Velocity.Sub(a.Velocity).Dot(n)
	if vn > 0 {
		return
	}

	j := -(1 + e) * vn / (1/a.Mass + 1/b.Mass)
	a.Velocity = a.Velocity.Sub(n.Scale(j / a.Mass))
	b.Velocity = b.Velocity.Add(n.Scale(j / b.Mass))

	half := (minDist - d) / 2
	a.Position = a.Position.Sub(n.Scale(half))
	b.Position = b.Position.Add(n.Scale(half))
}

// ResolveBoundaryCollisions keeps bodies inside the floor and side walls of
// bounds. The ceiling is open. Checks run floor, right, left per body.
func ResolveBoundaryCollisions(bodies []*Body, bounds Bounds, p Params, dt float64) {
	for _, b := range bodies {
		r := b.RadiusRender

		if b.Position.Y+r > bounds.Height {
			b.Position.Y = bounds.Height - r
			b.Velocity.Y = -b.Velocity.Y * p.WallRestitution
			applyFloorFriction(b, p, dt)
			if math.Abs(b.Velocity.Y) < BounceDeadband {
				b.Velocity.Y = 0
			}
		}

		if b.Position.X+r > bounds.Width {
			b.Position.X = bounds.Width - r
			b.Velocity.X = -b.Velocity.X * p.WallRestitution
		}

		if b.Position.X-r < 0 {
			b.Position.X = r
			b.Velocity.X = -b.Velocity.X * p.WallRestitution
		}
	}
}

// applyFloorFriction slows vx by μ·N/m·dt and stops at zero instead of
// reversing.
func applyFloorFriction(b *Body, p Params, dt float64) {
	normal := b.Mass * p.Gravity
	decel := p.Friction * normal / b.Mass * dt
	if decel >= math.Abs(b.Velocity.X) {
		b.Velocity.X = 0
		return
	}
	b.Velocity.X -= sign(b.Velocity.X) * decel
}

// Step runs one full frame on bodies in the fixed order.
func Step(bodies []*Body, p Params, dt float64) {
	Integrate(bodies, p, dt)
	ResolveBodyCollisions(bodies, p.BallRestitution)
	ResolveBoundaryCollisions(bodies, p.Bounds, p, dt)
}
