package metrics

import (
	"math"

	"github.com/san-kum/ballpit/internal/physics"
)

// Resting is the fraction of bodies with exactly zero velocity at the most
// recent observation. Deadband snapping makes exact zero reachable.
type Resting struct {
	name     string
	resting  int
	observed int
}

func NewResting() *Resting {
	return &Resting{name: "resting"}
}

func (r *Resting) Name() string { return r.name }

func (r *Resting) Observe(bodies []*physics.Body, t float64) {
	r.resting = 0
	r.observed = len(bodies)
	for _, b := range bodies {
		if b.Velocity.X == 0 && b.Velocity.Y == 0 {
			r.resting++
		}
	}
}

func (r *Resting) Value() float64 {
	if r.observed == 0 {
		return 1.0
	}
	return float64(r.resting) / float64(r.observed)
}

func (r *Resting) Reset() {
	r.resting = 0
	r.observed = 0
}

// PeakSpeed tracks the highest body speed seen during the run.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(bodies []*physics.Body, t float64) {
	for _, b := range bodies {
		p.peak = math.Max(p.peak, b.Velocity.Len())
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }
