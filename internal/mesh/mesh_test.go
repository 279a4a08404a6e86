package mesh

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(-2, 2, 5)
	expected := []float64{-2, -1, 0, 1, 2}
	for i := range expected {
		if math.Abs(xs[i]-expected[i]) > 1e-12 {
			t.Errorf("index %d: expected %f, got %f", i, expected[i], xs[i])
		}
	}

	if Linspace(0, 1, 0) != nil {
		t.Error("expected nil for n=0")
	}
	if one := Linspace(3, 4, 1); len(one) != 1 || one[0] != 3 {
		t.Errorf("expected [3], got %v", one)
	}
}

func TestSampleLayout(t *testing.T) {
	m := New(0, 3, 4, 10, 20, 3)
	f := m.Sample(func(x, y float64) float64 { return x + 100*y })

	c, r := f.Dims()
	if c != 4 || r != 3 {
		t.Fatalf("expected dims 4x3, got %dx%d", c, r)
	}
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			x, y := m.At(i, j)
			if f.Z(i, j) != x+100*y {
				t.Errorf("Z(%d,%d) = %f, expected %f", i, j, f.Z(i, j), x+100*y)
			}
		}
	}
	if f.X(3) != 3 || f.Y(2) != 20 {
		t.Errorf("axis lookup wrong: X(3)=%f Y(2)=%f", f.X(3), f.Y(2))
	}
}

func TestRangeIgnoresNonFinite(t *testing.T) {
	m := New(0, 1, 2, 0, 1, 2)
	f := &ScalarField{Mesh: m, Values: []float64{math.Inf(1), -1, math.NaN(), 5}}

	if f.Min() != -1 || f.Max() != 5 {
		t.Errorf("expected range [-1, 5], got [%f, %f]", f.Min(), f.Max())
	}

	levels := f.Levels(5)
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for _, l := range levels {
		if l <= -1 || l >= 5 {
			t.Errorf("level %f outside open range", l)
		}
	}
}

func TestLevelsFlatField(t *testing.T) {
	m := Square(1, 3)
	f := m.Sample(func(x, y float64) float64 { return 2 })
	if f.Levels(10) != nil {
		t.Error("flat field should have no contour levels")
	}
}

func TestClamp(t *testing.T) {
	m := New(0, 1, 3, 0, 0, 1)
	f := &ScalarField{Mesh: m, Values: []float64{-10, 0.5, math.Inf(1)}}
	c := f.Clamp(0, 1)
	expected := []float64{0, 0.5, 1}
	for i := range expected {
		if c.Values[i] != expected[i] {
			t.Errorf("index %d: expected %f, got %f", i, expected[i], c.Values[i])
		}
	}
}

func TestAbsQuantile(t *testing.T) {
	m := New(0, 1, 5, 0, 0, 1)
	f := &ScalarField{Mesh: m, Values: []float64{-4, 1, 2, 3, math.Inf(1)}}
	if got := f.AbsQuantile(1); got != 4 {
		t.Errorf("expected max |v| 4, got %f", got)
	}
	if got := f.AbsQuantile(0); got != 1 {
		t.Errorf("expected min |v| 1, got %f", got)
	}
}
