package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/physlab/internal/electro"
	"github.com/san-kum/physlab/internal/mesh"
	"github.com/san-kum/physlab/internal/physics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// potentialClip is the |V| quantile used to cut the equipotential range;
// without it every level crowds around the singularities.
const potentialClip = 0.95

func ElectroFigure(charges []electro.Charge, field *electro.Field, potential *mesh.ScalarField, levels int) (Figure, error) {
	p := newPlot("Electrostatic field of point charges", "X (m)", "Y (m)")

	if err := addAxisLines(p, field.Mesh); err != nil {
		return nil, err
	}

	p.Add(NewQuiver(field, moreland.ExtendedKindlmann()))

	if lim := potential.AbsQuantile(potentialClip); lim > 0 && !math.IsNaN(lim) {
		clipped := potential.Clamp(-lim, lim)
		if lv := clipped.Levels(levels); len(lv) > 1 {
			contour := plotter.NewContour(clipped, lv, coolPalette(len(lv)))
			p.Add(contour)
		}
	}

	for _, c := range charges {
		sc, err := plotter.NewScatter(plotter.XYs{{X: c.X, Y: c.Y}})
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(6)
		if c.Q > 0 {
			sc.GlyphStyle.Color = red
		} else {
			sc.GlyphStyle.Color = blue
		}
		p.Add(sc)
		p.Legend.Add(c.Label(), sc)
	}
	p.Legend.Top = true

	m := field.Mesh
	p.X.Min, p.X.Max = m.Xs[0], m.Xs[len(m.Xs)-1]
	p.Y.Min, p.Y.Max = m.Ys[0], m.Ys[len(m.Ys)-1]
	return Single{p}, nil
}

func EnergyFigure(times []float64, e physics.Energies) (Figure, error) {
	return energyPanels(times, e)
}

func energyPanels(times []float64, e physics.Energies) (Stack, error) {
	series := []struct {
		name   string
		values []float64
		col    color.Color
	}{
		{"Kinetic energy", e.Kinetic, blue},
		{"Potential energy", e.Potential, orange},
		{"Total energy", e.Total, green},
	}

	panels := make(Stack, len(series))
	for i, s := range series {
		xlabel := ""
		if i == len(series)-1 {
			xlabel = "Time (s)"
		}
		p := newPlot("", xlabel, "Energy (J)")
		if i == 0 {
			p.Title.Text = "Energy of a damped spring oscillator"
		}

		line, err := plotter.NewLine(xys(times, s.values))
		if err != nil {
			return nil, fmt.Errorf("render: %s: %w", s.name, err)
		}
		line.LineStyle.Color = s.col
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.name, line)
		p.Legend.Top = true

		if len(times) > 0 {
			p.X.Min, p.X.Max = times[0], times[len(times)-1]
		}
		panels[i] = p
	}
	return panels, nil
}

func PotentialFigure(name string, field *mesh.ScalarField, levels int) (Figure, error) {
	lo, hi := field.Min(), field.Max()
	if math.IsNaN(lo) {
		return nil, fmt.Errorf("render: %s potential has no finite values", name)
	}
	if lo == hi {
		hi = lo + 1
	}
	clamped := field.Clamp(lo, hi)

	// Palette sampling on the data range can step past Max through
	// roundoff, so sample on [0, 1] and rescale for the color bar only.
	cm := moreland.ExtendedBlackBody()
	cm.SetMin(0)
	cm.SetMax(1)
	pal := cm.Palette(128)
	cm.SetMin(lo)
	cm.SetMax(hi)

	p := newPlot(fmt.Sprintf("Potential U(x, y): %s", name), "x", "y")
	heat := plotter.NewHeatMap(clamped, pal)
	heat.Min, heat.Max = lo, hi
	p.Add(heat)

	if lv := clamped.Levels(levels); len(lv) > 1 {
		contour := plotter.NewContour(clamped, lv, mono{black})
		contour.LineStyles[0].Width = vg.Points(0.5)
		p.Add(contour)
	}

	m := field.Mesh
	p.X.Min, p.X.Max = m.Xs[0], m.Xs[len(m.Xs)-1]
	p.Y.Min, p.Y.Max = m.Ys[0], m.Ys[len(m.Ys)-1]

	bar := plot.New()
	bar.Title.Text = "U"
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})

	return WithBar{Main: p, Bar: bar, BarRatio: 0.15}, nil
}

func LoopFigure(loop *physics.Loop, n int) (Figure, error) {
	flight, err := loop.Projectile().Path(n)
	if err != nil {
		return nil, err
	}
	arc := loop.Arc(n)

	p := newPlot("Trajectory after leaving the loop", "x (m)", "y (m)")

	arcLine, err := plotter.NewLine(points(arc))
	if err != nil {
		return nil, err
	}
	arcLine.LineStyle.Color = blue
	arcLine.LineStyle.Width = vg.Points(1.5)

	flightLine, err := plotter.NewLine(points(flight))
	if err != nil {
		return nil, err
	}
	flightLine.LineStyle.Color = red
	flightLine.LineStyle.Width = vg.Points(1.5)

	d := loop.DetachPoint()
	detach, err := plotter.NewScatter(plotter.XYs{{X: d.X, Y: d.Y}})
	if err != nil {
		return nil, err
	}
	detach.GlyphStyle.Color = green
	detach.GlyphStyle.Shape = draw.CircleGlyph{}
	detach.GlyphStyle.Radius = vg.Points(4)

	p.Add(arcLine, flightLine, detach)
	p.Legend.Add("Path along the arc", arcLine)
	p.Legend.Add("Trajectory after detachment", flightLine)
	p.Legend.Add("Detach point", detach)

	equalAxes(p, append(arc, flight...))
	return Single{p}, nil
}

// equalAxes gives both axes the same span around the data, which keeps
// circles round on a square canvas.
func equalAxes(p *plot.Plot, pts []physics.Point) {
	if len(pts) == 0 {
		return
	}
	xmin, xmax, ymin, ymax := pts[0].X, pts[0].X, pts[0].Y, pts[0].Y
	for _, pt := range pts {
		xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
		ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
	}
	span := math.Max(xmax-xmin, ymax-ymin) * 1.1
	if span == 0 {
		span = 1
	}
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2
}

func addAxisLines(p *plot.Plot, m *mesh.Mesh) error {
	xmin, xmax := m.Xs[0], m.Xs[len(m.Xs)-1]
	ymin, ymax := m.Ys[0], m.Ys[len(m.Ys)-1]
	for _, pts := range []plotter.XYs{
		{{X: xmin, Y: 0}, {X: xmax, Y: 0}},
		{{X: 0, Y: ymin}, {X: 0, Y: ymax}},
	} {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = black
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
	}
	return nil
}

// mono is a single-color palette for contour lines.
type mono []color.Color

func (m mono) Colors() []color.Color { return m }

func coolPalette(n int) palette.Palette {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(n)
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func points(pts []physics.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i].X, out[i].Y = p.X, p.Y
	}
	return out
}
