package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for integration.
var (
	// ErrEmptyGrid indicates a time grid without any points.
	ErrEmptyGrid = errors.New("dynamo: empty time grid")

	// ErrInvalidGrid indicates a grid whose first step is not positive.
	ErrInvalidGrid = errors.New("dynamo: time grid must be strictly increasing")

	// ErrNonUniformGrid indicates spacing that deviates from the first step.
	ErrNonUniformGrid = errors.New("dynamo: time grid is not uniform")

	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates mismatched state dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
