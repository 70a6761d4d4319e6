package physics

import (
	"fmt"
	"math"
)

// UnitScale converts physical meters to render units.
const UnitScale = 100.0

// Body is a circular point-mass. Position and RadiusRender are in render
// units, Velocity and RadiusPhysical in physical units.
type Body struct {
	Position       Vec2
	Velocity       Vec2
	RadiusPhysical float64
	RadiusRender   float64
	Mass           float64
}

// NewBody returns a body at rest. RadiusRender is derived from radius and
// never set independently.
func NewBody(pos Vec2, radius, mass float64) *Body {
	return &Body{
		Position:       pos,
		RadiusPhysical: radius,
		RadiusRender:   radius * UnitScale,
		Mass:           mass,
	}
}

// CrossSection is the frontal area used by the drag law.
func (b *Body) CrossSection() float64 {
	return math.Pi * b.RadiusPhysical * b.RadiusPhysical
}

func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Velocity.Dot(b.Velocity)
}

func (b *Body) Momentum() Vec2 {
	return b.Velocity.Scale(b.Mass)
}

func (b *Body) IsValid() bool {
	return b.Position.IsValid() && b.Velocity.IsValid()
}

// ValidateBody checks the spawn contract. Callers run it before spawning;
// the integrator divides by mass unguarded.
func ValidateBody(radius, mass float64) error {
	if radius <= 0 || math.IsNaN(radius) {
		return fmt.Errorf("radius %g: %w", radius, ErrInvalidBody)
	}
	if mass <= 0 || math.IsNaN(mass) {
		return fmt.Errorf("mass %g: %w", mass, ErrInvalidBody)
	}
	return nil
}
