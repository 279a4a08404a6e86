package main

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/electro"
	"github.com/san-kum/physlab/internal/integrators"
	"github.com/san-kum/physlab/internal/mesh"
	"github.com/san-kum/physlab/internal/metrics"
	"github.com/san-kum/physlab/internal/physics"
	"github.com/san-kum/physlab/internal/potential"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/storage"
	"github.com/san-kum/physlab/internal/viz"
)

// demoResult is everything a demo produces: a figure to save, a terminal
// summary and the rows to archive.
type demoResult struct {
	Name    string
	Figure  render.Figure
	Summary string
	Run     storage.Run

	times    []float64
	energies physics.Energies
}

func figureSize(c *config.Config) (vg.Length, vg.Length) {
	return vg.Length(c.Output.Width) * vg.Inch, vg.Length(c.Output.Height) * vg.Inch
}

func figurePath(c *config.Config, output, name string) string {
	if output != "" {
		return output
	}
	return filepath.Join(c.Output.Dir, name+".png")
}

// writeFigure saves the figure and, when requested, archives the run.
func writeFigure(c *config.Config, res *demoResult, path string, save bool) error {
	w, h := figureSize(c)
	if err := render.Save(res.Figure, path, w, h); err != nil {
		return fmt.Errorf("%s: %w", res.Name, err)
	}
	logger.Info("figure written", zap.String("demo", res.Name), zap.String("path", path))

	if !save {
		return nil
	}
	res.Run.Figure = path
	runID, err := storage.New(dataDir).Save(res.Run)
	if err != nil {
		return fmt.Errorf("%s: archive run: %w", res.Name, err)
	}
	logger.Info("run archived", zap.String("demo", res.Name), zap.String("id", runID), zap.Int("rows", len(res.Run.Rows)))
	return nil
}

func electroDemo(c *config.Config) (*demoResult, error) {
	charges, err := electro.ParseCharges(c.Electro.Charges)
	if err != nil {
		return nil, err
	}
	logger.Debug("electro parameters",
		zap.String("charges", electro.FormatCharges(charges)),
		zap.Int("grid", c.Electro.Grid),
		zap.Float64("extent", c.Electro.Extent))

	m := mesh.Square(c.Electro.Extent, c.Electro.Grid)
	field := electro.Compute(charges, m)
	pot := electro.Potential(charges, m)

	fig, err := render.ElectroFigure(charges, field, pot, c.Electro.Levels)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, m.Len())
	peak := 0.0
	for j := 0; j < m.Ny(); j++ {
		for i := 0; i < m.Nx(); i++ {
			k := m.Index(i, j)
			x, y := m.At(i, j)
			rows = append(rows, []float64{x, y, field.Ex[k], field.Ey[k], field.Magnitude[k], pot.Values[k]})
			if !math.IsInf(field.Magnitude[k], 0) {
				peak = math.Max(peak, field.Magnitude[k])
			}
		}
	}

	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("ELECTROSTATIC FIELD") + "\n")
	for _, q := range charges {
		b.WriteString(viz.Metric(q.Label(), fmt.Sprintf("at (%.2f, %.2f)", q.X, q.Y)) + "\n")
	}
	b.WriteString(viz.Metric("net charge", fmt.Sprintf("%.3g C", electro.NetCharge(charges))) + "\n")
	b.WriteString(viz.Metric("max |E|", fmt.Sprintf("%.3g N/C", peak)) + "\n")

	return &demoResult{
		Name:    "electro",
		Figure:  fig,
		Summary: b.String(),
		Run: storage.Run{
			Demo: "electro",
			Params: map[string]float64{
				"charges": float64(len(charges)),
				"net":     electro.NetCharge(charges),
				"extent":  c.Electro.Extent,
				"grid":    float64(c.Electro.Grid),
			},
			Header: []string{"x", "y", "ex", "ey", "magnitude", "potential"},
			Rows:   rows,
		},
	}, nil
}

// oscillation is a solved oscillator trajectory with its energies.
type oscillation struct {
	osc      *physics.SpringOscillator
	result   *dynamo.Result
	energies physics.Energies
	metrics  map[string]float64
}

func solveOscillator(ctx context.Context, c *config.Config) (*oscillation, error) {
	osc := c.SpringModel()
	if err := osc.Validate(); err != nil {
		return nil, err
	}
	stepper, err := integrators.Get(c.Oscillator.Integrator)
	if err != nil {
		return nil, err
	}
	logger.Debug("oscillator parameters",
		zap.Float64("mass", osc.Mass),
		zap.Float64("stiffness", osc.Stiffness),
		zap.Float64("damping", osc.Damping),
		zap.Float64("x0", c.Oscillator.X0),
		zap.Float64("v0", c.Oscillator.V0),
		zap.String("integrator", c.Oscillator.Integrator))

	drift := metrics.NewEnergyDrift(osc)
	lost := metrics.NewDissipated(osc)
	amp := metrics.NewAmplitude(0)

	sim := dynamo.New(osc, stepper)
	sim.AddObserver(drift)
	sim.AddObserver(lost)
	sim.AddObserver(amp)

	grid := dynamo.LinearGrid(0, c.Oscillator.TEnd, c.Oscillator.Points)
	res, err := sim.Run(ctx, dynamo.State{c.Oscillator.X0, c.Oscillator.V0}, grid)
	if err != nil {
		return nil, err
	}
	return &oscillation{
		osc:      osc,
		result:   res,
		energies: osc.EnergySeries(res.States),
		metrics:  metrics.Values(drift, lost, amp),
	}, nil
}

func energyDemo(ctx context.Context, c *config.Config) (*demoResult, error) {
	o, err := solveOscillator(ctx, c)
	if err != nil {
		return nil, err
	}

	fig, err := render.EnergyFigure(o.result.Times, o.energies)
	if err != nil {
		return nil, err
	}

	rows := o.result.Rows()
	for i := range rows {
		rows[i] = append(rows[i], o.energies.Kinetic[i], o.energies.Potential[i], o.energies.Total[i])
	}

	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("SPRING OSCILLATOR ENERGY") + "\n")
	b.WriteString(viz.EnergyChart(o.energies, 60, 8) + "\n\n")
	b.WriteString(viz.Metric("E(0)", fmt.Sprintf("%.4f J", o.energies.Total[0])) + "\n")
	b.WriteString(viz.Metric("E(end)", fmt.Sprintf("%.4f J", o.energies.Total[len(o.energies.Total)-1])) + "\n")
	b.WriteString(viz.Metric("dissipated", fmt.Sprintf("%.1f%%", 100*o.metrics["dissipated"])) + "\n")
	b.WriteString(viz.Metric("amplitude", fmt.Sprintf("%.4f m", o.metrics["amplitude"])) + "\n")
	b.WriteString(viz.Metric("f natural", fmt.Sprintf("%.4f Hz", o.osc.NaturalFrequency())) + "\n")

	params := o.osc.GetParams()
	params["x0"] = c.Oscillator.X0
	params["v0"] = c.Oscillator.V0
	params["t_end"] = c.Oscillator.TEnd
	params["points"] = float64(c.Oscillator.Points)
	for k, v := range o.metrics {
		params[k] = v
	}

	return &demoResult{
		Name:    "energy",
		Figure:  fig,
		Summary: b.String(),
		Run: storage.Run{
			Demo:   "energy",
			Params: params,
			Header: []string{"t", "x", "v", "kinetic", "potential", "total"},
			Rows:   rows,
		},
		times:    o.result.Times,
		energies: o.energies,
	}, nil
}

func loopDemo(c *config.Config) (*demoResult, error) {
	loop := c.LoopModel()
	if err := loop.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("loop parameters",
		zap.Float64("mass", loop.Mass),
		zap.Float64("mu", loop.Mu),
		zap.Float64("radius", loop.Radius),
		zap.Float64("alpha", loop.Alpha))

	proj := loop.Projectile()
	landing, err := proj.LandingTime()
	if err != nil {
		return nil, err
	}
	path, err := proj.Path(c.Loop.Points)
	if err != nil {
		return nil, err
	}
	fig, err := render.LoopFigure(loop, c.Loop.Points)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(path))
	for i, p := range path {
		t := landing * float64(i) / float64(len(path)-1)
		rows[i] = []float64{t, p.X, p.Y}
	}

	detach := loop.DetachPoint()
	end := path[len(path)-1]

	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("LOOP TRAJECTORY") + "\n")
	b.WriteString(viz.Metric("entry speed", fmt.Sprintf("%.4f m/s", loop.EntrySpeed())) + "\n")
	b.WriteString(viz.Metric("detach speed", fmt.Sprintf("%.4f m/s", loop.DetachSpeed())) + "\n")
	b.WriteString(viz.Metric("detach at", fmt.Sprintf("(%.3f, %.3f)", detach.X, detach.Y)) + "\n")
	b.WriteString(viz.Metric("flight time", fmt.Sprintf("%.4f s", landing)) + "\n")
	b.WriteString(viz.Metric("lands at", fmt.Sprintf("x = %.3f m", end.X)) + "\n")

	arc := loop.Arc(c.Loop.Points)
	bounds := viz.BoundsOf(append(append([]physics.Point(nil), arc...), path...))
	canvas := viz.NewCanvas(50, 10)
	canvas.PlotXYIn(bounds, arc)
	canvas.PlotXYIn(bounds, path)
	b.WriteString(viz.Panel.Render(canvas.String()) + "\n")

	params := loop.GetParams()
	params["entry_speed"] = loop.EntrySpeed()
	params["landing_time"] = landing

	return &demoResult{
		Name:    "loop",
		Figure:  fig,
		Summary: b.String(),
		Run: storage.Run{
			Demo:   "loop",
			Params: params,
			Header: []string{"t", "x", "y"},
			Rows:   rows,
		},
	}, nil
}

func potentialDemo(c *config.Config) (*demoResult, error) {
	f, err := potential.New(c.Potential.Kind, c.Potential.Params)
	if err != nil {
		return nil, err
	}
	logger.Debug("potential parameters",
		zap.String("kind", c.Potential.Kind),
		zap.Any("params", c.Potential.Params),
		zap.Float64("extent", c.Potential.Extent))

	m := mesh.Square(c.Potential.Extent, c.Potential.Points)
	sampled := potential.Sample(f, m)

	fig, err := render.PotentialFigure(f.Name(), sampled, c.Potential.Levels)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, m.Len())
	for j := 0; j < m.Ny(); j++ {
		for i := 0; i < m.Nx(); i++ {
			x, y := m.At(i, j)
			rows = append(rows, []float64{x, y, sampled.Values[m.Index(i, j)]})
		}
	}

	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("POTENTIAL FIELD: "+strings.ToUpper(f.Name())) + "\n")
	names, _ := potential.ParamNames(c.Potential.Kind)
	for _, name := range names {
		b.WriteString(viz.Metric(name, fmt.Sprintf("%g", c.Potential.Params[name])) + "\n")
	}
	b.WriteString(viz.Metric("min U", fmt.Sprintf("%.4g", sampled.Min())) + "\n")
	b.WriteString(viz.Metric("max U", fmt.Sprintf("%.4g", sampled.Max())) + "\n")

	params := make(map[string]float64, len(c.Potential.Params)+1)
	for k, v := range c.Potential.Params {
		params[k] = v
	}
	params["extent"] = c.Potential.Extent

	return &demoResult{
		Name:    "potential",
		Figure:  fig,
		Summary: b.String(),
		Run: storage.Run{
			Demo:   "potential",
			Params: params,
			Header: []string{"x", "y", "u"},
			Rows:   rows,
		},
	}, nil
}
