package dynamo

import (
	"context"
	"math"
)

type Simulator struct {
	sys       System
	stepper   Stepper
	cfg       Config
	observers []Observer
}

func New(sys System, stepper Stepper) *Simulator {
	return &Simulator{
		sys:       sys,
		stepper:   stepper,
		cfg:       DefaultConfig(),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) WithConfig(cfg Config) *Simulator {
	s.cfg = cfg
	return s
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates y0 over grid. The stop-on-invalid check runs as an
// observer so the rows up to the failure are still returned.
func (s *Simulator) Run(ctx context.Context, y0 State, grid []float64) (*Result, error) {
	if dim := s.sys.StateDim(); dim > 0 && len(y0) != dim {
		return nil, ErrDimensionMismatch
	}
	if s.cfg.StrictGrid {
		if err := CheckUniform(grid, s.cfg.GridTolerance); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var invalid *SimulationError
	observers := append([]Observer(nil), s.observers...)
	if s.cfg.ValidateState {
		observers = append(observers, ObserverFunc(func(i int, t float64, y State) {
			if invalid == nil && !y.IsValid() {
				invalid = &SimulationError{Step: i, Time: t, State: y.Clone(), Wrapped: ErrInvalidState}
				cancel()
			}
		}))
	}

	states, err := Integrate(ctx, s.stepper, AsRHS(s.sys), y0, grid, observers...)
	if invalid != nil {
		return s.result(grid, states), invalid
	}
	if err != nil {
		return nil, err
	}
	return s.result(grid, states), nil
}

func (s *Simulator) result(grid []float64, states []State) *Result {
	res := &Result{
		Times:  grid[:len(states)],
		States: states,
		Steps:  len(states) - 1,
	}
	if h, ok := s.sys.(Hamiltonian); ok && len(states) > 0 {
		e0 := h.Energy(states[0])
		e1 := h.Energy(states[len(states)-1])
		if e0 != 0 {
			res.EnergyDrift = math.Abs(e1-e0) / math.Abs(e0)
		}
	}
	return res
}
