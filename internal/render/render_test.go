package render

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/electro"
	"github.com/san-kum/physlab/internal/integrators"
	"github.com/san-kum/physlab/internal/mesh"
	"github.com/san-kum/physlab/internal/physics"
	"github.com/san-kum/physlab/internal/potential"
	"gonum.org/v1/plot/vg"
)

func oscillatorRun(t *testing.T, points int) ([]float64, physics.Energies) {
	t.Helper()
	osc := physics.NewSpringOscillator(1, 10, 0.5)
	grid := dynamo.LinearGrid(0, 20, points)
	rows, err := integrators.Solve(osc.Derive, dynamo.State{1, 0}, grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return grid, osc.EnergySeries(rows)
}

func assertWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("%s not written: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestSaveFigures(t *testing.T) {
	dir := t.TempDir()

	charges, err := electro.ParseCharges(electro.DefaultCharges)
	if err != nil {
		t.Fatal(err)
	}
	m := mesh.Square(electro.DefaultExtent, 20)
	electroFig, err := ElectroFigure(charges, electro.Compute(charges, m), electro.Potential(charges, m), electro.DefaultLevels)
	if err != nil {
		t.Fatalf("electro figure: %v", err)
	}

	times, energies := oscillatorRun(t, 200)
	energyFig, err := EnergyFigure(times, energies)
	if err != nil {
		t.Fatalf("energy figure: %v", err)
	}

	u := potential.Sample(potential.Gravity{G: 1, M1: 1, M2: 1}, mesh.Square(potential.DefaultExtent, 30))
	potentialFig, err := PotentialFigure("gravity", u, 10)
	if err != nil {
		t.Fatalf("potential figure: %v", err)
	}

	loopFig, err := LoopFigure(physics.NewLoop(), 100)
	if err != nil {
		t.Fatalf("loop figure: %v", err)
	}

	figures := map[string]Figure{
		"electro.png":     electroFig,
		"energy.svg":      energyFig,
		"potential.png":   potentialFig,
		"nested/loop.pdf": loopFig,
	}
	for name, fig := range figures {
		path := filepath.Join(dir, name)
		if err := Save(fig, path, 4*vg.Inch, 3*vg.Inch); err != nil {
			t.Errorf("save %s: %v", name, err)
			continue
		}
		assertWritten(t, path)
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	times, energies := oscillatorRun(t, 10)
	fig, err := EnergyFigure(times, energies)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err := Save(fig, filepath.Join(dir, "energy"), DefaultWidth, DefaultHeight); err == nil {
		t.Error("expected error for missing extension")
	}
	if err := Save(fig, filepath.Join(dir, "energy.xyz"), DefaultWidth, DefaultHeight); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestPotentialFigureFlatField(t *testing.T) {
	u := potential.Sample(potential.Elastic{K: 0}, mesh.Square(1, 5))
	if _, err := PotentialFigure("elastic", u, 10); err != nil {
		t.Errorf("flat field should still render: %v", err)
	}
}

func TestPotentialFigureDefaultMesh(t *testing.T) {
	fields := map[string]potential.Field{
		"gravity": potential.Gravity{G: 1, M1: 1, M2: 1},
		"elastic": potential.Elastic{K: 1},
		"power":   potential.Power{A: 1, N: 2, B: -1, M: 2},
		"sqrt":    potential.Power{A: 1, N: 0.5, B: 1, M: 2},
	}
	for _, kind := range potential.Kinds() {
		if _, ok := fields[kind]; !ok {
			t.Fatalf("no test field for kind %q", kind)
		}
	}

	m := mesh.Square(potential.DefaultExtent, potential.DefaultPoints)
	dir := t.TempDir()
	for name, f := range fields {
		t.Run(name, func(t *testing.T) {
			fig, err := PotentialFigure(name, potential.Sample(f, m), 20)
			if err != nil {
				t.Fatalf("potential figure: %v", err)
			}
			path := filepath.Join(dir, name+".png")
			if err := Save(fig, path, DefaultWidth, DefaultHeight); err != nil {
				t.Fatalf("save: %v", err)
			}
			assertWritten(t, path)
		})
	}
}

func TestEnergyGIF(t *testing.T) {
	times, energies := oscillatorRun(t, 50)

	var buf bytes.Buffer
	if err := EnergyGIF(&buf, times, energies, 5, 10, 3*vg.Inch, 2*vg.Inch); err != nil {
		t.Fatalf("gif failed: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 5 {
		t.Errorf("expected 5 frames, got %d", len(anim.Image))
	}
}

func TestEnergyGIFTooShort(t *testing.T) {
	var buf bytes.Buffer
	err := EnergyGIF(&buf, []float64{0}, physics.Energies{Kinetic: []float64{0}, Potential: []float64{1}, Total: []float64{1}}, 3, 10, vg.Inch, vg.Inch)
	if err != ErrTooFewSamples {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}
