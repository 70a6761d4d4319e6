// Package physics implements the ball simulation core: integration of
// circular point-masses under gravity and quadratic drag, and impulse-based
// collision resolution between bodies and against the container walls.
//
//   - [Integrate]: advance velocities then positions by one step
//   - [ResolveBodyCollisions]: pairwise body/body impulse and depenetration
//   - [ResolveBoundaryCollisions]: floor and side walls (no ceiling)
//
// Velocities are in physical units (m/s) while positions and render radii are
// in render units; [UnitScale] converts between them.
//
// # Step Order
//
// A step is always integrate, then body pass, then boundary pass:
//
//	physics.Integrate(bodies, p, dt)
//	physics.ResolveBodyCollisions(bodies, p.BallRestitution)
//	physics.ResolveBoundaryCollisions(bodies, p.Bounds, p, dt)
//
// # Thread Safety
//
// Nothing here locks. Bodies are mutated in place and must be owned by a
// single driver.
package physics
