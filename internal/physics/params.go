package physics

const (
	// DefaultGravity is standard earth gravity in m/s².
	DefaultGravity = 9.8
	// AirDensity is sea-level air density in kg/m³.
	AirDensity = 1.225
	// DefaultDragCoefficient is the drag coefficient of a smooth sphere.
	DefaultDragCoefficient = 0.47
	DefaultFriction        = 0.3

	// WallRestitution applies to floor and side walls.
	WallRestitution = 0.7
	// BallRestitution applies between bodies.
	BallRestitution = 0.9

	// DragDeadband is the per-axis speed at or below which drag snaps the
	// component to zero.
	DragDeadband = 0.01
	// BounceDeadband is the floor rebound speed below which vy snaps to zero.
	BounceDeadband = 0.5
)

// Bounds is the containment rectangle in render units. The origin is the
// top-left corner and y grows downward.
type Bounds struct {
	Width  float64
	Height float64
}

// Params is everything a step reads from its environment. A fresh value
// is supplied every step.
type Params struct {
	Gravity         float64
	Friction        float64
	DragCoefficient float64
	FluidDensity    float64
	WallRestitution float64
	BallRestitution float64
	Bounds          Bounds
}

// DefaultParams returns earth-like parameters for the given bounds.
func DefaultParams(bounds Bounds) Params {
	return Params{
		Gravity:         DefaultGravity,
		Friction:        DefaultFriction,
		DragCoefficient: DefaultDragCoefficient,
		FluidDensity:    AirDensity,
		WallRestitution: WallRestitution,
		BallRestitution: BallRestitution,
		Bounds:          bounds,
	}
}

// GetParams exposes the tunable parameters by name.
func (p *Params) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity":  p.Gravity,
		"friction": p.Friction,
		"drag":     p.DragCoefficient,
		"density":  p.FluidDensity,
	}
}

// SetParam sets a tunable parameter by name.
func (p *Params) SetParam(name string, v float64) error {
	if v < 0 {
		return ErrParameterBounds
	}
	switch name {
	case "gravity":
		p.Gravity = v
	case "friction":
		p.Friction = v
	case "drag":
		p.DragCoefficient = v
	case "density":
		p.FluidDensity = v
	default:
		return ErrParameterBounds
	}
	return nil
}
