package integrators

import (
	"testing"

	"github.com/san-kum/physlab/internal/dynamo"
)

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(harmonic, x, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(harmonic, x, 0, 0.01)
	}
}

func BenchmarkSolve500(b *testing.B) {
	grid := dynamo.LinearGrid(0, 20, 500)
	y0 := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(harmonic, y0, grid); err != nil {
			b.Fatal(err)
		}
	}
}
