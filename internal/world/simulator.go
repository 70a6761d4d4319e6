package world

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/ballpit/internal/physics"
)

// Simulator drives a World at a fixed dt without a renderer.
type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func NewSimulator() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run steps w for cfg.Duration. Cancellation is checked between frames only,
// so a frame is always applied completely or not at all.
func (s *Simulator) Run(ctx context.Context, w *World, cfg RunConfig) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}
	if cfg.KeepFrames {
		result.Frames = make([]Frame, 0, steps+1)
		result.Times = make([]float64, 0, steps+1)
		result.Frames = append(result.Frames, w.Snapshot())
		result.Times = append(result.Times, 0)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	params := cfg.Params

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		bodies := w.Bodies()
		for _, m := range s.metrics {
			m.Observe(bodies, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(bodies, t)
		}

		if cfg.Bounds != nil {
			params.Bounds = cfg.Bounds(t)
		}
		w.Step(params, cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState {
			if idx := firstInvalid(w.Bodies()); idx >= 0 {
				result.Errors = append(result.Errors, &physics.StepError{
					Step: i, Time: t, Body: idx, Wrapped: physics.ErrUnstable,
				})
				break
			}
		}

		if cfg.KeepFrames {
			result.Frames = append(result.Frames, w.Snapshot())
			result.Times = append(result.Times, t)
		}
	}

	for _, m := range s.metrics {
		m.Observe(w.Bodies(), t)
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f: %w", cfg.Dt, physics.ErrParameterBounds)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f: %w", cfg.Duration, physics.ErrParameterBounds)
	}
	if cfg.Bounds == nil && (cfg.Params.Bounds.Width <= 0 || cfg.Params.Bounds.Height <= 0) {
		return fmt.Errorf("bounds must be positive, got %gx%g: %w",
			cfg.Params.Bounds.Width, cfg.Params.Bounds.Height, physics.ErrParameterBounds)
	}
	return nil
}

func firstInvalid(bodies []*physics.Body) int {
	for i, b := range bodies {
		if !b.IsValid() {
			return i
		}
	}
	return -1
}
