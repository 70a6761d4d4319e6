package physics

import (
	"math"
	"testing"
)

func testParams() Params {
	p := DefaultParams(Bounds{Width: 800, Height: 600})
	p.DragCoefficient = 0
	return p
}

func TestBoundaryWalls(t *testing.T) {
	tests := []struct {
		name   string
		pos    Vec2
		vel    Vec2
		wantX  float64
		wantVX float64
	}{
		{"right wall", Vec2{X: 795, Y: 300}, Vec2{X: 2}, 790, -2 * WallRestitution},
		{"left wall", Vec2{X: 4, Y: 300}, Vec2{X: -3}, 10, 3 * WallRestitution},
		{"inside", Vec2{X: 400, Y: 300}, Vec2{X: 1}, 400, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			b := NewBody(tt.pos, 0.1, 1)
			b.Velocity = tt.vel

			ResolveBoundaryCollisions([]*Body{b}, p.Bounds, p, 1.0/60)

			if math.Abs(b.Position.X-tt.wantX) > 1e-9 {
				t.Errorf("expected x %f, got %f", tt.wantX, b.Position.X)
			}
			if math.Abs(b.Velocity.X-tt.wantVX) > 1e-12 {
				t.Errorf("expected vx %f, got %f", tt.wantVX, b.Velocity.X)
			}
		})
	}
}

func TestBoundaryCeilingOpen(t *testing.T) {
	p := testParams()
	b := NewBody(Vec2{X: 400, Y: -250}, 0.1, 1)
	b.Velocity = Vec2{Y: -3}

	ResolveBoundaryCollisions([]*Body{b}, p.Bounds, p, 1.0/60)

	if b.Position.Y != -250 || b.Velocity.Y != -3 {
		t.Errorf("expected body above the top edge untouched, got pos %v vel %v", b.Position, b.Velocity)
	}
}

func TestBoundaryFloorBounce(t *testing.T) {
	p := testParams()
	b := NewBody(Vec2{X: 400, Y: 595}, 0.1, 1)
	b.Velocity = Vec2{X: 0, Y: 4}

	ResolveBoundaryCollisions([]*Body{b}, p.Bounds, p, 1.0/60)

	if b.Position.Y != 590 {
		t.Errorf("expected y clamped to 590, got %f", b.Position.Y)
	}
	if math.Abs(b.Velocity.Y-(-4*WallRestitution)) > 1e-12 {
		t.Errorf("expected vy %f, got %f", -4*WallRestitution, b.Velocity.Y)
	}
}

func TestBoundaryFloorFriction(t *testing.T) {
	p := testParams()
	p.Friction = 0.5
	dt := 0.1
	decel := 0.5 * 9.8 * dt

	tests := []struct {
		name  string
		vx    float64
		wantX float64
	}{
		{"slows positive", 2, 2 - decel},
		{"slows negative", -2, -2 + decel},
		{"snaps instead of reversing", 0.3, 0},
		{"snaps negative", -0.3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(Vec2{X: 400, Y: 592}, 0.1, 1)
			b.Velocity = Vec2{X: tt.vx, Y: 1}

			ResolveBoundaryCollisions([]*Body{b}, p.Bounds, p, dt)

			if math.Abs(b.Velocity.X-tt.wantX) > 1e-12 {
				t.Errorf("expected vx %f, got %f", tt.wantX, b.Velocity.X)
			}
		})
	}
}

func TestBoundaryCornerCorrectsBothAxes(t *testing.T) {
	p := testParams()
	p.Friction = 0
	b := NewBody(Vec2{X: 798, Y: 598}, 0.1, 1)
	b.Velocity = Vec2{X: 2, Y: 3}

	ResolveBoundaryCollisions([]*Body{b}, p.Bounds, p, 1.0/60)

	if b.Position != (Vec2{X: 790, Y: 590}) {
		t.Errorf("expected corner clamp to (790, 590), got %v", b.Position)
	}
	if b.Velocity.X >= 0 || b.Velocity.Y >= 0 {
		t.Errorf("expected both components reflected, got %v", b.Velocity)
	}
}

func TestResolveBodyCollisionsUnequalMass(t *testing.T) {
	light := NewBody(Vec2{X: 0, Y: 0}, 0.1, 1)
	heavy := NewBody(Vec2{X: 18, Y: 0}, 0.1, 4)
	light.Velocity = Vec2{X: 2}

	ResolveBodyCollisions([]*Body{light, heavy}, 1.0)

	// 1-D elastic: v1' = (m1-m2)/(m1+m2)*u, v2' = 2m1/(m1+m2)*u
	if math.Abs(light.Velocity.X-(-1.2)) > 1e-12 {
		t.Errorf("expected light vx -1.2, got %f", light.Velocity.X)
	}
	if math.Abs(heavy.Velocity.X-0.8) > 1e-12 {
		t.Errorf("expected heavy vx 0.8, got %f", heavy.Velocity.X)
	}
}

func TestResolveBodyCollisionsDistantUntouched(t *testing.T) {
	bodies := []*Body{
		NewBody(Vec2{X: 0, Y: 0}, 0.1, 1),
		NewBody(Vec2{X: 100, Y: 0}, 0.1, 1),
		NewBody(Vec2{X: 300, Y: 0}, 0.1, 1),
	}
	bodies[0].Velocity = Vec2{X: 1}

	ResolveBodyCollisions(bodies, BallRestitution)

	for i, b := range bodies {
		if i == 0 && b.Velocity.X != 1 {
			t.Errorf("expected distant bodies untouched, body 0 vx %f", b.Velocity.X)
		}
		if i > 0 && b.Velocity.X != 0 {
			t.Errorf("expected distant bodies untouched, body %d vx %f", i, b.Velocity.X)
		}
	}
}

func TestResolveBodyCollisionsEachPairOnce(t *testing.T) {
	// a and b collide first; after b hands its velocity on to c, a and b
	// still overlap and approach, so a second visit of (a, b) would change a
	a := NewBody(Vec2{X: 0}, 0.1, 1)
	b := NewBody(Vec2{X: 15}, 0.1, 1)
	c := NewBody(Vec2{X: 30}, 0.1, 1)
	a.Velocity = Vec2{X: 1}
	c.Velocity = Vec2{X: -1}

	ResolveBodyCollisions([]*Body{a, b, c}, 1.0)

	want := []float64{0, -1, 1}
	for i, body := range []*Body{a, b, c} {
		if math.Abs(body.Velocity.X-want[i]) > 1e-12 {
			t.Errorf("body %d: expected vx %f, got %f", i, want[i], body.Velocity.X)
		}
	}
	if d := b.Position.X - a.Position.X; d >= a.RadiusRender+b.RadiusRender {
		t.Fatalf("expected a and b to still overlap, got distance %f", d)
	}
}
