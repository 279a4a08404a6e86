package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/physlab/internal/physics"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != blank|0x01 {
		t.Errorf("expected top-left dot, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != blank|0x80 {
		t.Errorf("expected bottom-right dot, got %U", c.Grid[0][1])
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != blank {
		t.Errorf("expected empty cell, got %U", c.Grid[0][0])
	}
	if !c.IsSet(3, 3) {
		t.Error("unset should not touch other cells")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(2, 0)
	c.Set(0, 4)
	if c.Grid[0][0] != blank {
		t.Errorf("out of range points should be dropped, got %U", c.Grid[0][0])
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(1, 1, 17, 15)
	if !c.IsSet(1, 1) || !c.IsSet(17, 15) {
		t.Error("line should include both endpoints")
	}
}

func TestPlotXYFillsCorners(t *testing.T) {
	c := NewCanvas(10, 5)
	c.PlotXY([]physics.Point{{X: -1, Y: -1}, {X: 1, Y: 1}})

	if !c.IsSet(0, c.Height*4-1) {
		t.Error("minimum point should map to bottom left")
	}
	if !c.IsSet(c.Width*2-1, 0) {
		t.Error("maximum point should map to top right")
	}
}

func TestPlotXYSkipsNaN(t *testing.T) {
	c := NewCanvas(4, 2)
	nan := physics.Point{X: 0.5, Y: math.NaN()}
	c.PlotXY([]physics.Point{{X: 0, Y: 0}, nan, {X: 1, Y: 1}})
	if !c.IsSet(0, c.Height*4-1) || !c.IsSet(c.Width*2-1, 0) {
		t.Error("finite points should still be drawn")
	}
}

func TestBoundsOfDegenerate(t *testing.T) {
	b := BoundsOf([]physics.Point{{X: 2, Y: 3}})
	if b.MaxX-b.MinX != 1 || b.MaxY-b.MinY != 1 {
		t.Errorf("degenerate bounds should widen to unit size, got %+v", b)
	}
}

func TestEnergyChart(t *testing.T) {
	e := physics.Energies{
		Kinetic:   []float64{0, 1, 2, 1, 0},
		Potential: []float64{2, 1, 0, 1, 2},
		Total:     []float64{2, 2, 2, 2, 2},
	}
	chart := EnergyChart(e, 20, 5)
	if !strings.Contains(chart, "Energy") {
		t.Error("chart should carry its caption")
	}
	if EnergyChart(physics.Energies{}, 20, 5) != "" {
		t.Error("empty energies should render nothing")
	}
}

func TestDownsample(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	got := downsample(values, 10)
	if len(got) != 10 || got[0] != 0 || got[9] != 99 {
		t.Errorf("downsample should keep endpoints, got %v", got)
	}
}

func TestBar(t *testing.T) {
	if n := strings.Count(Bar(0.5, 10, TotalBar), "█"); n != 5 {
		t.Errorf("expected 5 filled cells, got %d", n)
	}
	if n := strings.Count(Bar(2, 10, TotalBar), "█"); n != 10 {
		t.Errorf("overfull bar should clamp, got %d", n)
	}
}

func TestMetricSeparatesLabel(t *testing.T) {
	for _, label := range []string{"detach speed", "entry speed", "f natural", "+10.0 nC"} {
		out := Metric(label, "3.8341 m/s")
		if !strings.Contains(out, label+" ") {
			t.Errorf("label %q runs into its value: %q", label, out)
		}
		if !strings.Contains(out, "3.8341 m/s") {
			t.Errorf("value missing from %q", out)
		}
	}
}
