package dynamo

import (
	"context"
	"errors"
	"math"
	"testing"
)

type decay struct{ rate float64 }

func (d decay) Derive(t float64, y State) State { return State{-d.rate * y[0]} }
func (d decay) StateDim() int                   { return 1 }
func (d decay) Energy(y State) float64          { return y[0] * y[0] }

type blowup struct{}

func (blowup) Derive(t float64, y State) State { return State{math.Inf(1)} }
func (blowup) StateDim() int                   { return 1 }

func TestSimulatorRun(t *testing.T) {
	sim := New(decay{rate: 1}, euler{})
	res, err := sim.Run(context.Background(), State{1}, LinearGrid(0, 1, 11))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Steps != 10 {
		t.Errorf("expected 10 steps, got %d", res.Steps)
	}
	if len(res.Times) != len(res.States) {
		t.Errorf("times and states differ in length: %d vs %d", len(res.Times), len(res.States))
	}
	if res.EnergyDrift <= 0 {
		t.Error("decaying system should report energy drift")
	}
	col := res.Column(0)
	if col[0] != 1 {
		t.Errorf("expected first sample 1, got %f", col[0])
	}
}

func TestSimulatorDimensionMismatch(t *testing.T) {
	sim := New(decay{rate: 1}, euler{})
	_, err := sim.Run(context.Background(), State{1, 2}, LinearGrid(0, 1, 3))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSimulatorStrictGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictGrid = true
	sim := New(decay{rate: 1}, euler{}).WithConfig(cfg)

	_, err := sim.Run(context.Background(), State{1}, []float64{0, 0.1, 0.5})
	if !errors.Is(err, ErrNonUniformGrid) {
		t.Errorf("expected ErrNonUniformGrid, got %v", err)
	}
}

func TestSimulatorInvalidState(t *testing.T) {
	sim := New(blowup{}, euler{})
	res, err := sim.Run(context.Background(), State{0}, LinearGrid(0, 1, 100))

	var simErr *SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("expected SimulationError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("simulation error should wrap ErrInvalidState")
	}
	if simErr.Step != 1 {
		t.Errorf("expected failure at step 1, got %d", simErr.Step)
	}
	if res == nil || len(res.States) >= 100 {
		t.Error("expected a truncated partial result")
	}
}
