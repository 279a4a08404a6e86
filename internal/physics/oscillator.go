package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
)

const (
	DefaultOscMass      = 1.0
	DefaultOscStiffness = 10.0
	DefaultOscDamping   = 0.5

	DefaultX0     = 1.0
	DefaultV0     = 0.0
	DefaultTEnd   = 20.0
	DefaultPoints = 500
)

// SpringOscillator is a mass on a linear spring with viscous damping.
// State is (x, v).
type SpringOscillator struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

func NewSpringOscillator(mass, stiffness, damping float64) *SpringOscillator {
	return &SpringOscillator{Mass: mass, Stiffness: stiffness, Damping: damping}
}

func (s *SpringOscillator) Validate() error {
	if !(s.Mass > 0) {
		return fmt.Errorf("%w: mass must be positive, got %g", dynamo.ErrParameterBounds, s.Mass)
	}
	if math.IsNaN(s.Stiffness) || math.IsNaN(s.Damping) {
		return fmt.Errorf("%w: stiffness and damping must be numbers", dynamo.ErrParameterBounds)
	}
	return nil
}

func (s *SpringOscillator) StateDim() int { return 2 }

func (s *SpringOscillator) Derive(_ float64, y dynamo.State) dynamo.State {
	x, v := y[0], y[1]
	return dynamo.State{v, -s.Stiffness/s.Mass*x - s.Damping/s.Mass*v}
}

func (s *SpringOscillator) Kinetic(v float64) float64   { return 0.5 * s.Mass * v * v }
func (s *SpringOscillator) Potential(x float64) float64 { return 0.5 * s.Stiffness * x * x }

func (s *SpringOscillator) Energy(y dynamo.State) float64 {
	return s.Kinetic(y[1]) + s.Potential(y[0])
}

// NaturalFrequency is the undamped frequency in Hz.
func (s *SpringOscillator) NaturalFrequency() float64 {
	return math.Sqrt(s.Stiffness/s.Mass) / (2 * math.Pi)
}

// DampedFrequency is the ringing frequency in Hz, zero when overdamped.
func (s *SpringOscillator) DampedFrequency() float64 {
	w0 := s.Stiffness / s.Mass
	g := s.Damping / (2 * s.Mass)
	if w0 <= g*g {
		return 0
	}
	return math.Sqrt(w0-g*g) / (2 * math.Pi)
}

func (s *SpringOscillator) GetParams() map[string]float64 {
	return map[string]float64{"mass": s.Mass, "stiffness": s.Stiffness, "damping": s.Damping}
}

type Energies struct {
	Kinetic   []float64
	Potential []float64
	Total     []float64
}

func (s *SpringOscillator) EnergySeries(states []dynamo.State) Energies {
	e := Energies{
		Kinetic:   make([]float64, len(states)),
		Potential: make([]float64, len(states)),
		Total:     make([]float64, len(states)),
	}
	for i, y := range states {
		e.Kinetic[i] = s.Kinetic(y[1])
		e.Potential[i] = s.Potential(y[0])
		e.Total[i] = e.Kinetic[i] + e.Potential[i]
	}
	return e
}

// Slice returns the first n samples of every series.
func (e Energies) Slice(n int) Energies {
	if n > len(e.Total) {
		n = len(e.Total)
	}
	return Energies{Kinetic: e.Kinetic[:n], Potential: e.Potential[:n], Total: e.Total[:n]}
}

// MaxDrift is the largest relative deviation of Total from its first value.
func (e Energies) MaxDrift() float64 {
	if len(e.Total) == 0 || e.Total[0] == 0 {
		return 0
	}
	drift := 0.0
	for _, v := range e.Total {
		drift = math.Max(drift, math.Abs(v-e.Total[0])/math.Abs(e.Total[0]))
	}
	return drift
}
