package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/physlab/internal/electro"
	"github.com/san-kum/physlab/internal/integrators"
	"github.com/san-kum/physlab/internal/physics"
	"github.com/san-kum/physlab/internal/potential"
)

const (
	DefaultOutputDir = "figures"
	DefaultWidth     = 8.0
	DefaultHeight    = 6.0
	DefaultLoopPts   = 200
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Electro    ElectroConfig    `yaml:"electro"`
	Oscillator OscillatorConfig `yaml:"oscillator"`
	Loop       LoopConfig       `yaml:"loop"`
	Potential  PotentialConfig  `yaml:"potential"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

type ElectroConfig struct {
	Charges string  `yaml:"charges"`
	Extent  float64 `yaml:"extent"`
	Grid    int     `yaml:"grid"`
	Levels  int     `yaml:"levels"`
}

type OscillatorConfig struct {
	Mass       float64 `yaml:"mass"`
	Stiffness  float64 `yaml:"stiffness"`
	Damping    float64 `yaml:"damping"`
	X0         float64 `yaml:"x0"`
	V0         float64 `yaml:"v0"`
	TEnd       float64 `yaml:"t_end"`
	Points     int     `yaml:"points"`
	Integrator string  `yaml:"integrator"`
}

type LoopConfig struct {
	Mass   float64 `yaml:"mass"`
	Mu     float64 `yaml:"mu"`
	Radius float64 `yaml:"radius"`
	Alpha  float64 `yaml:"alpha"`
	G      float64 `yaml:"g"`
	Points int     `yaml:"points"`
}

type PotentialConfig struct {
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params"`
	Extent float64            `yaml:"extent"`
	Points int                `yaml:"points"`
	Levels int                `yaml:"levels"`
}

type OutputConfig struct {
	Dir    string  `yaml:"dir"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Electro: ElectroConfig{
			Charges: electro.DefaultCharges,
			Extent:  electro.DefaultExtent,
			Grid:    electro.DefaultPoints,
			Levels:  electro.DefaultLevels,
		},
		Oscillator: OscillatorConfig{
			Mass:       physics.DefaultOscMass,
			Stiffness:  physics.DefaultOscStiffness,
			Damping:    physics.DefaultOscDamping,
			X0:         physics.DefaultX0,
			V0:         physics.DefaultV0,
			TEnd:       physics.DefaultTEnd,
			Points:     physics.DefaultPoints,
			Integrator: "rk4",
		},
		Loop: LoopConfig{
			Mass:   physics.DefaultLoopMass,
			Mu:     physics.DefaultLoopMu,
			Radius: physics.DefaultLoopRadius,
			Alpha:  physics.DefaultLoopAlpha,
			G:      physics.DefaultLoopG,
			Points: DefaultLoopPts,
		},
		Potential: PotentialConfig{
			Kind:   "gravity",
			Params: map[string]float64{"G": 1, "m1": 1, "m2": 1},
			Extent: potential.DefaultExtent,
			Points: potential.DefaultPoints,
			Levels: 20,
		},
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	// A params map in the file replaces the default one instead of merging.
	cfg.Potential.Params = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Potential.Params == nil {
		cfg.Potential.Params = DefaultConfig().Potential.Params
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	for _, demo := range Demos() {
		if err := c.validators()[demo](); err != nil {
			return err
		}
	}
	return c.validateOutput()
}

// ValidateDemo checks only the section a single demo reads, plus output.
func (c *Config) ValidateDemo(demo string) error {
	validate, ok := c.validators()[demo]
	if !ok {
		return fmt.Errorf("%w: unknown demo %q (available: %v)", ErrInvalid, demo, Demos())
	}
	if err := validate(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validators() map[string]func() error {
	return map[string]func() error{
		"electro":   c.validateElectro,
		"energy":    c.validateOscillator,
		"loop":      c.validateLoop,
		"potential": c.validatePotential,
	}
}

func (c *Config) validateElectro() error {
	if _, err := electro.ParseCharges(c.Electro.Charges); err != nil {
		return err
	}
	if !(c.Electro.Extent > 0) || c.Electro.Grid < 2 || c.Electro.Levels < 0 {
		return fmt.Errorf("%w: electro needs extent > 0, grid >= 2, levels >= 0", ErrInvalid)
	}
	return nil
}

func (c *Config) validateOscillator() error {
	if err := c.SpringModel().Validate(); err != nil {
		return err
	}
	if !(c.Oscillator.TEnd > 0) || c.Oscillator.Points < 2 {
		return fmt.Errorf("%w: oscillator needs t_end > 0 and points >= 2", ErrInvalid)
	}
	_, err := integrators.Get(c.Oscillator.Integrator)
	return err
}

func (c *Config) validateLoop() error {
	if err := c.LoopModel().Validate(); err != nil {
		return err
	}
	if c.Loop.Points < 2 {
		return fmt.Errorf("%w: loop needs points >= 2", ErrInvalid)
	}
	return nil
}

func (c *Config) validatePotential() error {
	if _, err := potential.New(c.Potential.Kind, c.Potential.Params); err != nil {
		return err
	}
	if !(c.Potential.Extent > 0) || c.Potential.Points < 2 || c.Potential.Levels < 0 {
		return fmt.Errorf("%w: potential needs extent > 0, points >= 2, levels >= 0", ErrInvalid)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !(c.Output.Width > 0) || !(c.Output.Height > 0) {
		return fmt.Errorf("%w: output width and height must be positive", ErrInvalid)
	}
	return nil
}

func (c *Config) SpringModel() *physics.SpringOscillator {
	return physics.NewSpringOscillator(c.Oscillator.Mass, c.Oscillator.Stiffness, c.Oscillator.Damping)
}

func (c *Config) LoopModel() *physics.Loop {
	return &physics.Loop{
		Mass:   c.Loop.Mass,
		Mu:     c.Loop.Mu,
		Radius: c.Loop.Radius,
		Alpha:  c.Loop.Alpha,
		G:      c.Loop.G,
	}
}
