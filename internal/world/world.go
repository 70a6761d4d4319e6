package world

import (
	"math/rand"

	"github.com/san-kum/ballpit/internal/physics"
)

// SpawnSpeed is the width of the uniform range new bodies draw their
// horizontal velocity from, centered on zero (m/s).
const SpawnSpeed = 2.0

type World struct {
	bodies []*physics.Body
	rng    *rand.Rand
}

func New(seed int64) *World {
	return &World{
		bodies: make([]*physics.Body, 0),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Spawn appends a body with zero vy and a small random vx. Radius and mass
// must already be validated; see physics.ValidateBody.
func (w *World) Spawn(pos physics.Vec2, radius, mass float64) *physics.Body {
	b := physics.NewBody(pos, radius, mass)
	b.Velocity.X = (w.rng.Float64() - 0.5) * SpawnSpeed
	w.bodies = append(w.bodies, b)
	return b
}

// SpawnRow spreads n bodies evenly across the width of bounds at height y.
func (w *World) SpawnRow(n int, bounds physics.Bounds, y, radius, mass float64) {
	if n <= 0 {
		return
	}
	gap := bounds.Width / float64(n+1)
	for i := 1; i <= n; i++ {
		w.Spawn(physics.Vec2{X: gap * float64(i), Y: y}, radius, mass)
	}
}

// Step runs integrate, body pass, then boundary pass. p is read fresh on
// every call, bounds included.
func (w *World) Step(p physics.Params, dt float64) {
	physics.Step(w.bodies, p, dt)
}

// Bodies returns the live store for rendering. Callers must not mutate it.
func (w *World) Bodies() []*physics.Body { return w.bodies }

func (w *World) Len() int { return len(w.bodies) }

// Clear drops every body. Slices returned by Bodies before the call keep
// their contents.
func (w *World) Clear() {
	w.bodies = nil
}

// Snapshot copies the current body states.
func (w *World) Snapshot() Frame {
	f := make(Frame, len(w.bodies))
	for i, b := range w.bodies {
		f[i] = BodyState{
			X:      b.Position.X,
			Y:      b.Position.Y,
			VX:     b.Velocity.X,
			VY:     b.Velocity.Y,
			Radius: b.RadiusRender,
			Mass:   b.Mass,
		}
	}
	return f
}
