package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rigidcalc/internal/analysis"
	"github.com/san-kum/rigidcalc/internal/inertia"
	"github.com/san-kum/rigidcalc/internal/mechanics"
)

const (
	DefaultMass     = 1.0
	DefaultVelocity = 10.0
	DefaultRadius   = 0.5
	DefaultLength   = 1.0
	DefaultHeight   = 10.0
	DefaultGravity  = mechanics.StandardGravity
)

// Config is a yaml-loadable scenario description.
type Config struct {
	Shape           string  `yaml:"shape"`
	Mass            float64 `yaml:"mass"`
	Radius          float64 `yaml:"radius"`
	Length          float64 `yaml:"length"`
	Inertia         float64 `yaml:"inertia"` // direct value for shape: custom
	Velocity        float64 `yaml:"velocity"`
	AngularVelocity float64 `yaml:"angular_velocity"`
	Height          float64 `yaml:"height"`
	Gravity         float64 `yaml:"gravity"`

	SpringConstant     float64 `yaml:"spring_constant"`
	SpringDisplacement float64 `yaml:"spring_displacement"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:    inertia.SolidSphere.String(),
		Mass:     DefaultMass,
		Radius:   DefaultRadius,
		Length:   DefaultLength,
		Velocity: DefaultVelocity,
		Height:   DefaultHeight,
		Gravity:  DefaultGravity,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
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

// Geometry picks the geometry parameter the configured shape requires.
func (c *Config) Geometry() (inertia.Geometry, error) {
	shape, err := inertia.ParseShape(c.Shape)
	if err != nil {
		return inertia.Geometry{}, err
	}
	switch shape.RequiredParameter() {
	case inertia.ParamRadius:
		return inertia.Radius(c.Radius), nil
	case inertia.ParamLength:
		return inertia.Length(c.Length), nil
	default:
		return inertia.CustomValue(c.Inertia), nil
	}
}

// Scenario converts the config into an analysis input.
func (c *Config) Scenario() (analysis.Scenario, error) {
	shape, err := inertia.ParseShape(c.Shape)
	if err != nil {
		return analysis.Scenario{}, err
	}
	geom, err := c.Geometry()
	if err != nil {
		return analysis.Scenario{}, err
	}
	return analysis.Scenario{
		Mass:               c.Mass,
		Shape:              shape,
		Geometry:           geom,
		Velocity:           c.Velocity,
		AngularVelocity:    c.AngularVelocity,
		Height:             c.Height,
		Gravity:            c.Gravity,
		SpringConstant:     c.SpringConstant,
		SpringDisplacement: c.SpringDisplacement,
	}, nil
}
