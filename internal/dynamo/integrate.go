package dynamo

import (
	"context"
	"fmt"
	"math"
)

// Integrate advances y0 across grid with a fixed step and returns one row
// per grid point. Row 0 is a copy of y0. The step is grid[1]-grid[0] for
// every row; later spacing is not inspected.
func Integrate(ctx context.Context, st Stepper, f RHS, y0 State, grid []float64, observers ...Observer) ([]State, error) {
	n := len(grid)
	if n == 0 {
		return nil, ErrEmptyGrid
	}

	rows := make([]State, n)
	rows[0] = y0.Clone()
	notify(observers, 0, grid[0], rows[0])
	if n == 1 {
		return rows, nil
	}

	dt := grid[1] - grid[0]
	if !(dt > 0) {
		return nil, fmt.Errorf("%w: dt=%g", ErrInvalidGrid, dt)
	}

	for i := 1; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return rows[:i], err
		}
		rows[i] = st.Step(f, rows[i-1], grid[i-1], dt)
		notify(observers, i, grid[i], rows[i])
	}

	return rows, nil
}

func notify(observers []Observer, i int, t float64, y State) {
	for _, o := range observers {
		o.OnStep(i, t, y)
	}
}

// LinearGrid returns n evenly spaced points over [start, stop], both
// endpoints included.
func LinearGrid(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = start
		return grid
	}
	step := (stop - start) / float64(n-1)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}
	grid[n-1] = stop
	return grid
}

// CheckUniform reports ErrNonUniformGrid when any spacing differs from the
// first by more than tol (relative to the first step).
func CheckUniform(grid []float64, tol float64) error {
	if len(grid) < 3 {
		return nil
	}
	dt := grid[1] - grid[0]
	for i := 2; i < len(grid); i++ {
		d := grid[i] - grid[i-1]
		if math.Abs(d-dt) > tol*math.Abs(dt) {
			return fmt.Errorf("%w: step %d is %g, expected %g", ErrNonUniformGrid, i, d, dt)
		}
	}
	return nil
}
