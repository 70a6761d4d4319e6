package world

import "github.com/san-kum/ballpit/internal/physics"

// BodyState is a copy of one body at one instant.
type BodyState struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Mass   float64
}

// Frame is every body at one instant, in store order.
type Frame []BodyState

type Metric interface {
	Name() string
	Observe(bodies []*physics.Body, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(bodies []*physics.Body, t float64)
}

// BoundsFunc supplies the container size for the frame at time t.
type BoundsFunc func(t float64) physics.Bounds

type RunConfig struct {
	Dt            float64
	Duration      float64
	Params        physics.Params
	Bounds        BoundsFunc
	ValidateState bool
	KeepFrames    bool
}

func DefaultRunConfig(bounds physics.Bounds) RunConfig {
	return RunConfig{
		Dt:            1.0 / 60,
		Duration:      10.0,
		Params:        physics.DefaultParams(bounds),
		ValidateState: true,
		KeepFrames:    true,
	}
}

type Result struct {
	Frames     []Frame
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Last returns the final recorded frame, or nil.
func (r *Result) Last() Frame {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}
