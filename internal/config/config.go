package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballpit/internal/physics"
	"github.com/san-kum/ballpit/internal/world"
)

const (
	DefaultDt          = 1.0 / 60
	DefaultDuration    = 10.0
	DefaultWidth       = 800.0
	DefaultHeight      = 600.0
	DefaultBodies      = 5
	DefaultSpawnY      = 60.0
	DefaultEnvironment = "earth"
	DefaultMaterial    = "rubber"

	// MinMass is the mass floor applied before any body is spawned.
	MinMass = 0.01
)

type Config struct {
	Environment string       `yaml:"environment"`
	Material    string       `yaml:"material"`
	Dt          float64      `yaml:"dt"`
	Duration    float64      `yaml:"duration"`
	Seed        int64        `yaml:"seed"`
	Width       float64      `yaml:"width"`
	Height      float64      `yaml:"height"`
	Bodies      int          `yaml:"bodies"`
	Params      ParamsConfig `yaml:"params"`
	Spawn       SpawnConfig  `yaml:"spawn"`
}

type ParamsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Friction     float64 `yaml:"friction"`
	Drag         float64 `yaml:"drag"`
	FluidDensity float64 `yaml:"fluid_density"`
}

type SpawnConfig struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Y      float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Environment: DefaultEnvironment,
		Material:    DefaultMaterial,
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Bodies:      DefaultBodies,
		Spawn:       SpawnConfig{Y: DefaultSpawnY},
	}
	cfg.ApplyEnvironment(Environments[DefaultEnvironment])
	cfg.ApplyMaterial(Materials[DefaultMaterial])
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// presets named in the file go down first; explicit params and spawn
	// values in the same file land on top of them
	var names struct {
		Environment string `yaml:"environment"`
		Material    string `yaml:"material"`
	}
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if names.Environment != "" {
		cfg.Environment = names.Environment
	}
	if names.Material != "" {
		cfg.Material = names.Material
	}
	if err := cfg.ApplyPresets(); err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects unusable values and clamps the spawn mass up to MinMass.
// It reports whether the mass was clamped.
func (c *Config) Validate() (clamped bool, err error) {
	switch {
	case c.Dt <= 0:
		return false, fmt.Errorf("dt must be positive, got %g: %w", c.Dt, physics.ErrParameterBounds)
	case c.Duration <= 0:
		return false, fmt.Errorf("duration must be positive, got %g: %w", c.Duration, physics.ErrParameterBounds)
	case c.Width <= 0 || c.Height <= 0:
		return false, fmt.Errorf("bounds must be positive, got %gx%g: %w", c.Width, c.Height, physics.ErrParameterBounds)
	case c.Bodies < 0:
		return false, fmt.Errorf("bodies must not be negative, got %d: %w", c.Bodies, physics.ErrParameterBounds)
	case c.Spawn.Radius <= 0:
		return false, fmt.Errorf("radius must be positive, got %g: %w", c.Spawn.Radius, physics.ErrParameterBounds)
	case c.Params.Gravity < 0 || c.Params.Friction < 0 || c.Params.Drag < 0 || c.Params.FluidDensity < 0:
		return false, fmt.Errorf("gravity, friction, drag and density must not be negative: %w", physics.ErrParameterBounds)
	}
	if c.Spawn.Radius*physics.UnitScale*2 > c.Width {
		return false, fmt.Errorf("radius %g does not fit in width %g: %w", c.Spawn.Radius, c.Width, physics.ErrParameterBounds)
	}
	if c.Spawn.Mass < MinMass {
		c.Spawn.Mass = MinMass
		clamped = true
	}
	if r := c.DragRate(); r >= 1 {
		return clamped, fmt.Errorf("drag rate %.2f per step diverges at dt %g, lower density or drag or raise mass: %w",
			r, c.Dt, physics.ErrParameterBounds)
	}
	return clamped, nil
}

// DragRate is k·v·dt for the spawn body, with k = ½·Cd·ρ·A/m and v the larger
// of the spawn speed and the terminal fall speed. The per-axis drag update
// overshoots zero once it reaches 1.
func (c *Config) DragRate() float64 {
	area := math.Pi * c.Spawn.Radius * c.Spawn.Radius
	k := 0.5 * c.Params.Drag * c.Params.FluidDensity * area / c.Spawn.Mass
	if k == 0 {
		return 0
	}
	v := math.Max(world.SpawnSpeed/2, math.Sqrt(c.Params.Gravity/k))
	return k * v * c.Dt
}

// ApplyPresets applies the environment and material named in c.
func (c *Config) ApplyPresets() error {
	env, err := LookupEnvironment(c.Environment)
	if err != nil {
		return err
	}
	mat, err := LookupMaterial(c.Material)
	if err != nil {
		return err
	}
	c.ApplyEnvironment(env)
	c.ApplyMaterial(mat)
	return nil
}

func (c *Config) Bounds() physics.Bounds {
	return physics.Bounds{Width: c.Width, Height: c.Height}
}

// PhysicsParams builds the full parameter set for one step.
func (c *Config) PhysicsParams() physics.Params {
	p := physics.DefaultParams(c.Bounds())
	p.Gravity = c.Params.Gravity
	p.Friction = c.Params.Friction
	p.DragCoefficient = c.Params.Drag
	p.FluidDensity = c.Params.FluidDensity
	return p
}

func (c *Config) ApplyEnvironment(env Environment) {
	c.Params.Gravity = env.Gravity
	c.Params.FluidDensity = env.FluidDensity
	c.Params.Drag = env.Drag
}

func (c *Config) ApplyMaterial(m Material) {
	c.Spawn.Radius = m.Radius
	c.Spawn.Mass = m.Mass
	c.Params.Friction = m.Friction
}
