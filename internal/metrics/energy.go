package metrics

import "github.com/san-kum/ballpit/internal/physics"

// KineticEnergy averages the total kinetic energy of all bodies over the run.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
	last    float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(bodies []*physics.Body, t float64) {
	e.last = TotalKineticEnergy(bodies)
	e.total += e.last
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Last is the energy at the most recent observation.
func (e *KineticEnergy) Last() float64 { return e.last }

func (e *KineticEnergy) Reset() {
	e.total = 0
	e.last = 0
	e.samples = 0
}

func TotalKineticEnergy(bodies []*physics.Body) float64 {
	sum := 0.0
	for _, b := range bodies {
		sum += b.KineticEnergy()
	}
	return sum
}
