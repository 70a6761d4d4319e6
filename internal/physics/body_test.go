package physics

import (
	"errors"
	"math"
	"testing"
)

func TestNewBodyRenderRadius(t *testing.T) {
	b := NewBody(Vec2{X: 1, Y: 2}, 0.25, 3)

	if b.RadiusRender != 0.25*UnitScale {
		t.Errorf("expected render radius %f, got %f", 0.25*UnitScale, b.RadiusRender)
	}
	if b.Velocity != (Vec2{}) {
		t.Errorf("expected body at rest, got %v", b.Velocity)
	}
}

func TestValidateBody(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		mass   float64
		ok     bool
	}{
		{"valid", 0.1, 1, true},
		{"zero mass", 0.1, 0, false},
		{"negative mass", 0.1, -1, false},
		{"zero radius", 0, 1, false},
		{"nan radius", math.NaN(), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBody(tt.radius, tt.mass)
			if tt.ok && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidBody) {
				t.Errorf("expected ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestBodyEnergyAndMomentum(t *testing.T) {
	b := NewBody(Vec2{}, 0.1, 2)
	b.Velocity = Vec2{X: 3, Y: 4}

	if b.KineticEnergy() != 25 {
		t.Errorf("expected energy 25, got %f", b.KineticEnergy())
	}
	if b.Momentum() != (Vec2{X: 6, Y: 8}) {
		t.Errorf("expected momentum (6, 8), got %v", b.Momentum())
	}
}

func TestBodyIsValid(t *testing.T) {
	b := NewBody(Vec2{}, 0.1, 1)
	if !b.IsValid() {
		t.Error("expected fresh body to be valid")
	}
	b.Velocity.X = math.Inf(1)
	if b.IsValid() {
		t.Error("expected body with Inf velocity to be invalid")
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Step: 12, Time: 0.2, Body: 3, Wrapped: ErrUnstable}
	expected := "step 12 (t=0.2000) body 3: physics: simulation unstable (body diverged)"
	if err.Error() != expected {
		t.Errorf("StepError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrUnstable) {
		t.Error("expected StepError to unwrap to ErrUnstable")
	}
}

func TestParamsSetParam(t *testing.T) {
	p := DefaultParams(Bounds{Width: 10, Height: 10})

	if err := p.SetParam("gravity", 1.6); err != nil {
		t.Fatalf("set gravity failed: %v", err)
	}
	if p.Gravity != 1.6 {
		t.Errorf("expected gravity 1.6, got %f", p.Gravity)
	}
	if err := p.SetParam("unknown", 1); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
	if err := p.SetParam("drag", -1); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds for negative value, got %v", err)
	}
	if len(p.GetParams()) != 4 {
		t.Errorf("expected 4 params, got %d", len(p.GetParams()))
	}
}
