// Package metrics observes the body store during a run.
package metrics

import "github.com/san-kum/ballpit/internal/world"

// Defaults returns the metric set used by the CLI.
func Defaults() []world.Metric {
	return []world.Metric{
		NewKineticEnergy(),
		NewMomentum(),
		NewResting(),
		NewPeakSpeed(),
	}
}
