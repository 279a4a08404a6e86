// Package metrics collects scalar summaries of a trajectory while it is
// being integrated. Every metric is a dynamo.Observer.
package metrics

import (
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
)

type Metric interface {
	dynamo.Observer
	Name() string
	Value() float64
	Reset()
}

// EnergyDrift tracks the largest relative deviation of a Hamiltonian
// system's energy from its value at the first observed step.
type EnergyDrift struct {
	sys           dynamo.Hamiltonian
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(sys dynamo.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{sys: sys}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) OnStep(_ int, _ float64, y dynamo.State) {
	energy := e.sys.Energy(y)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// Dissipated is the fraction of the initial energy lost by the last step.
type Dissipated struct {
	sys     dynamo.Hamiltonian
	initial float64
	last    float64
	seen    bool
}

func NewDissipated(sys dynamo.Hamiltonian) *Dissipated {
	return &Dissipated{sys: sys}
}

func (d *Dissipated) Name() string { return "dissipated" }

func (d *Dissipated) OnStep(_ int, _ float64, y dynamo.State) {
	d.last = d.sys.Energy(y)
	if !d.seen {
		d.initial, d.seen = d.last, true
	}
}

func (d *Dissipated) Value() float64 {
	if d.initial == 0 {
		return 0
	}
	return (d.initial - d.last) / d.initial
}

func (d *Dissipated) Reset() { *d = Dissipated{sys: d.sys} }

// Amplitude is the largest |y[Index]| seen.
type Amplitude struct {
	Index int
	peak  float64
}

func NewAmplitude(index int) *Amplitude { return &Amplitude{Index: index} }

func (a *Amplitude) Name() string { return "amplitude" }

func (a *Amplitude) OnStep(_ int, _ float64, y dynamo.State) {
	if a.Index < len(y) {
		a.peak = math.Max(a.peak, math.Abs(y[a.Index]))
	}
}

func (a *Amplitude) Value() float64 { return a.peak }
func (a *Amplitude) Reset()         { a.peak = 0 }

// Values collects metric values by name.
func Values(ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
