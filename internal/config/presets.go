package config

import (
	"fmt"
	"sort"
)

// Environment is the world a simulation runs in.
type Environment struct {
	Gravity      float64
	FluidDensity float64
	Drag         float64
}

// Material is what the balls are made of.
type Material struct {
	Radius   float64
	Mass     float64
	Friction float64
}

var Environments = map[string]Environment{
	"earth":   {Gravity: 9.8, FluidDensity: 1.225, Drag: 0.47},
	"moon":    {Gravity: 1.62, FluidDensity: 0, Drag: 0.47},
	"mars":    {Gravity: 3.71, FluidDensity: 0.02, Drag: 0.47},
	"jupiter": {Gravity: 24.79, FluidDensity: 0.16, Drag: 0.47},
	"water":   {Gravity: 9.8, FluidDensity: 997, Drag: 0.47},
	"vacuum":  {Gravity: 9.8, FluidDensity: 0, Drag: 0},
}

var Materials = map[string]Material{
	"rubber":  {Radius: 0.1, Mass: 0.5, Friction: 0.6},
	"steel":   {Radius: 0.08, Mass: 2.0, Friction: 0.2},
	"wood":    {Radius: 0.12, Mass: 0.4, Friction: 0.4},
	"foam":    {Radius: 0.15, Mass: 0.45, Friction: 0.7},
	"bowling": {Radius: 0.11, Mass: 6.0, Friction: 0.1},
}

func GetEnvironment(name string) (Environment, bool) {
	env, ok := Environments[name]
	return env, ok
}

func GetMaterial(name string) (Material, bool) {
	m, ok := Materials[name]
	return m, ok
}

// LookupEnvironment is GetEnvironment with an error naming the choices.
func LookupEnvironment(name string) (Environment, error) {
	env, ok := Environments[name]
	if !ok {
		return Environment{}, fmt.Errorf("unknown environment: %s (available: %v)", name, ListEnvironments())
	}
	return env, nil
}

func LookupMaterial(name string) (Material, error) {
	m, ok := Materials[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material: %s (available: %v)", name, ListMaterials())
	}
	return m, nil
}

func ListEnvironments() []string {
	return sortedKeys(Environments)
}

func ListMaterials() []string {
	return sortedKeys(Materials)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
