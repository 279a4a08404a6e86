package integrators

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/physlab/internal/dynamo"
)

// Solve integrates f from y0 over grid with RK4 and returns one row per
// grid point, row 0 being y0.
func Solve(f dynamo.RHS, y0 dynamo.State, grid []float64) ([]dynamo.State, error) {
	return dynamo.Integrate(context.Background(), NewRK4(), f, y0, grid)
}

var steppers = map[string]func() dynamo.Stepper{
	"rk4":   func() dynamo.Stepper { return NewRK4() },
	"euler": func() dynamo.Stepper { return NewEuler() },
}

// Get returns a fresh stepper by name.
func Get(name string) (dynamo.Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
