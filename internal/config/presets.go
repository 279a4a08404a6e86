package config

import (
	"math"
	"sort"
)

// Presets are named overlays applied on top of DefaultConfig, keyed by demo.
var Presets = map[string]map[string]func(*Config){
	"electro": {
		"dipole": func(c *Config) {
			c.Electro.Charges = "-1,0,1e-9; 1,0,-1e-9"
		},
		"like": func(c *Config) {
			c.Electro.Charges = "-1,0,1e-9; 1,0,1e-9"
		},
		"quadrupole": func(c *Config) {
			c.Electro.Charges = "-1,-1,1e-9; 1,-1,-1e-9; 1,1,1e-9; -1,1,-1e-9"
		},
		"single": func(c *Config) {
			c.Electro.Charges = "0,0,1e-9"
		},
	},
	"energy": {
		"undamped": func(c *Config) {
			c.Oscillator.Damping = 0
		},
		"critical": func(c *Config) {
			c.Oscillator.Damping = 2 * math.Sqrt(c.Oscillator.Stiffness*c.Oscillator.Mass)
		},
		"heavy": func(c *Config) {
			c.Oscillator.Mass = 5
			c.Oscillator.TEnd = 40
		},
		"kick": func(c *Config) {
			c.Oscillator.X0 = 0
			c.Oscillator.V0 = 5
		},
	},
	"loop": {
		"frictionless": func(c *Config) {
			c.Loop.Mu = 0
		},
		"large": func(c *Config) {
			c.Loop.Radius = 6
		},
	},
	"potential": {
		"gravity": func(c *Config) {
			c.Potential.Kind = "gravity"
			c.Potential.Params = map[string]float64{"G": 1, "m1": 1, "m2": 1}
		},
		"spring": func(c *Config) {
			c.Potential.Kind = "elastic"
			c.Potential.Params = map[string]float64{"k": 1}
		},
		"saddle": func(c *Config) {
			c.Potential.Kind = "power"
			c.Potential.Params = map[string]float64{"a": 1, "n": 2, "b": -1, "m": 2}
		},
		"quartic": func(c *Config) {
			c.Potential.Kind = "power"
			c.Potential.Params = map[string]float64{"a": 1, "n": 4, "b": 1, "m": 4}
		},
	},
}

// Apply overlays the named preset onto cfg. It reports false when the
// preset does not exist.
func Apply(cfg *Config, demo, preset string) bool {
	fn, ok := Presets[demo][preset]
	if !ok {
		return false
	}
	fn(cfg)
	return true
}

// GetPreset returns the default configuration with the preset applied,
// or nil when the demo or preset is unknown.
func GetPreset(demo, preset string) *Config {
	cfg := DefaultConfig()
	if !Apply(cfg, demo, preset) {
		return nil
	}
	return cfg
}

func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Demos() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
