package physics

import "math"

// Integrate advances every body by dt: gravity on vy, per-axis quadratic
// drag, then position. Mass must already be positive.
func Integrate(bodies []*Body, p Params, dt float64) {
	for _, b := range bodies {
		b.Velocity.Y += p.Gravity * dt

		area := b.CrossSection()
		b.Velocity.X = applyDrag(b.Velocity.X, area, b.Mass, p, dt)
		b.Velocity.Y = applyDrag(b.Velocity.Y, area, b.Mass, p, dt)

		b.Position.X += b.Velocity.X * dt * UnitScale
		b.Position.Y += b.Velocity.Y * dt * UnitScale
	}
}

// applyDrag decelerates one velocity component. Drag is computed per axis
// from that axis' speed alone, not from the full velocity vector.
func applyDrag(v, area, mass float64, p Params, dt float64) float64 {
	speed := math.Abs(v)
	if speed <= DragDeadband {
		return 0
	}
	force := 0.5 * p.DragCoefficient * p.FluidDensity * area * speed * speed
	return v - sign(v)*force/mass*dt
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
