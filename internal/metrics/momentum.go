package metrics

import "github.com/san-kum/ballpit/internal/physics"

// Momentum reports |Σ m·v| at the most recent observation.
type Momentum struct {
	name  string
	value float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(bodies []*physics.Body, t float64) {
	m.value = TotalMomentum(bodies).Len()
}

func (m *Momentum) Value() float64 { return m.value }

func (m *Momentum) Reset() { m.value = 0 }

func TotalMomentum(bodies []*physics.Body) physics.Vec2 {
	var p physics.Vec2
	for _, b := range bodies {
		p = p.Add(b.Momentum())
	}
	return p
}
