package dynamo

import (
	"context"
	"errors"
	"math"
	"testing"
)

// euler keeps these tests independent of the integrators package.
type euler struct{}

func (euler) Step(f RHS, y State, t, dt float64) State {
	dy := f(t, y)
	out := make(State, len(y))
	for i := range y {
		out[i] = y[i] + dt*dy[i]
	}
	return out
}

func constant(c float64) RHS {
	return func(t float64, y State) State { return State{c} }
}

func TestIntegrate_EmptyGrid(t *testing.T) {
	_, err := Integrate(context.Background(), euler{}, constant(1), State{0}, nil)
	if !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestIntegrate_SinglePoint(t *testing.T) {
	y0 := State{3, 4}
	rows, err := Integrate(context.Background(), euler{}, constant(1), y0, []float64{0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	y0[0] = 99
	if rows[0][0] != 3 {
		t.Errorf("row 0 should be a copy of y0, got %v", rows[0])
	}
}

func TestIntegrate_DecreasingGrid(t *testing.T) {
	_, err := Integrate(context.Background(), euler{}, constant(1), State{0}, []float64{1, 0.5, 0})
	if !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestIntegrate_UsesFirstSpacing(t *testing.T) {
	grid := []float64{0, 0.1, 5, 100}
	rows, err := Integrate(context.Background(), euler{}, constant(1), State{0}, grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, row := range rows {
		expected := 0.1 * float64(i)
		if math.Abs(row[0]-expected) > 1e-12 {
			t.Errorf("row %d: expected %f, got %f", i, expected, row[0])
		}
	}
}

func TestIntegrate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := Integrate(ctx, euler{}, constant(1), State{0}, LinearGrid(0, 1, 10))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the initial row, got %d", len(rows))
	}
}

func TestIntegrate_ObserversSeeEveryRow(t *testing.T) {
	var seen []int
	obs := ObserverFunc(func(i int, _ float64, _ State) { seen = append(seen, i) })

	_, err := Integrate(context.Background(), euler{}, constant(1), State{0}, LinearGrid(0, 1, 5), obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 notifications, got %d", len(seen))
	}
	for i, v := range seen {
		if v != i {
			t.Errorf("notification %d had index %d", i, v)
		}
	}
}

func TestLinearGrid(t *testing.T) {
	grid := LinearGrid(0, 20, 500)
	if len(grid) != 500 {
		t.Fatalf("expected 500 points, got %d", len(grid))
	}
	if grid[0] != 0 || grid[499] != 20 {
		t.Errorf("endpoints wrong: %f, %f", grid[0], grid[499])
	}
	if err := CheckUniform(grid, 1e-9); err != nil {
		t.Errorf("linear grid should be uniform: %v", err)
	}

	if LinearGrid(0, 1, 0) != nil {
		t.Error("expected nil grid for n=0")
	}
}

func TestCheckUniform(t *testing.T) {
	if err := CheckUniform([]float64{0, 1, 3}, 1e-9); !errors.Is(err, ErrNonUniformGrid) {
		t.Errorf("expected ErrNonUniformGrid, got %v", err)
	}
}
