package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// RHS returns dy/dt at (t, y). Parameters are bound by the closure.
type RHS func(t float64, y State) State

type System interface {
	Derive(t float64, y State) State
	StateDim() int
}

// AsRHS adapts a System to the function form expected by steppers.
func AsRHS(sys System) RHS {
	return sys.Derive
}

type Hamiltonian interface {
	Energy(y State) float64
}

type Stepper interface {
	Step(f RHS, y State, t, dt float64) State
}

// Observer is notified after every accepted row, including row 0.
type Observer interface {
	OnStep(i int, t float64, y State)
}

type ObserverFunc func(i int, t float64, y State)

func (fn ObserverFunc) OnStep(i int, t float64, y State) { fn(i, t, y) }

type Config struct {
	ValidateState bool
	StrictGrid    bool
	GridTolerance float64
}

func DefaultConfig() Config {
	return Config{
		ValidateState: true,
		StrictGrid:    false,
		GridTolerance: 1e-9,
	}
}

type Result struct {
	Times       []float64
	States      []State
	EnergyDrift float64
	Steps       int
}

// Column returns component i of every state row.
func (r *Result) Column(i int) []float64 {
	col := make([]float64, len(r.States))
	for k, s := range r.States {
		if i < len(s) {
			col[k] = s[i]
		}
	}
	return col
}

// Rows flattens times and states into CSV-style rows.
func (r *Result) Rows() [][]float64 {
	rows := make([][]float64, len(r.States))
	for k, s := range r.States {
		row := make([]float64, 0, len(s)+1)
		row = append(row, r.Times[k])
		row = append(row, s...)
		rows[k] = row
	}
	return rows
}
