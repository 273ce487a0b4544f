package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/horizon/internal/geometry"
	"github.com/san-kum/horizon/internal/ode"
)

const (
	DefaultGridPoints    = 201
	DefaultScheme        = "rk2"
	DefaultSeedLow       = 0.4
	DefaultSeedHigh      = 0.6
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 50
)

// Config describes one solve: the puncture layout plus the numerical knobs.
type Config struct {
	Sources       []float64 `yaml:"sources"`
	GridPoints    int       `yaml:"grid_points"`
	Scheme        string    `yaml:"scheme"`
	SeedLow       float64   `yaml:"seed_low"`
	SeedHigh      float64   `yaml:"seed_high"`
	Tolerance     float64   `yaml:"tolerance"`
	MaxIterations int       `yaml:"max_iterations"`
}

func DefaultConfig() *Config {
	return &Config{
		Sources:       []float64{0},
		GridPoints:    DefaultGridPoints,
		Scheme:        DefaultScheme,
		SeedLow:       DefaultSeedLow,
		SeedHigh:      DefaultSeedHigh,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
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

func (c *Config) Validate() error {
	if err := geometry.SingularitySet(c.Sources).Validate(); err != nil {
		return err
	}
	if c.GridPoints < 2 {
		return ode.ErrGridSize
	}
	if c.SeedLow <= 0 || c.SeedHigh <= 0 {
		return fmt.Errorf("%w: secant seeds (%g, %g) must be positive", ode.ErrInvalidInput, c.SeedLow, c.SeedHigh)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ode.ErrInvalidInput, c.Tolerance)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be at least 1, got %d", ode.ErrInvalidInput, c.MaxIterations)
	}
	return nil
}
