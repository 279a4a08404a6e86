package render

import (
	"image/color"
	"math"

	"github.com/san-kum/physlab/internal/electro"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Quiver draws one unit arrow per mesh point, centered on the point and
// colored by log10 of the field magnitude.
type Quiver struct {
	Field    *electro.Field
	Length   float64 // arrow length in data units
	ColorMap palette.ColorMap
	Width    vg.Length
}

func NewQuiver(f *electro.Field, cm palette.ColorMap) *Quiver {
	q := &Quiver{
		Field:    f,
		ColorMap: cm,
		Width:    vg.Points(0.8),
	}
	if m := f.Mesh; m.Nx() > 1 {
		q.Length = 0.8 * (m.Xs[1] - m.Xs[0])
	} else {
		q.Length = 0.1
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, mag := range f.Magnitude {
		if mag > 0 && !math.IsInf(mag, 0) {
			l := math.Log10(mag)
			lo, hi = math.Min(lo, l), math.Max(hi, l)
		}
	}
	if lo > hi {
		lo, hi = 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	cm.SetMin(lo)
	cm.SetMax(hi)
	return q
}

func (q *Quiver) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	m := q.Field.Mesh
	half := q.Length / 2
	head := q.Length * 0.3

	for j, y := range m.Ys {
		for i, x := range m.Xs {
			k := m.Index(i, j)
			mag := q.Field.Magnitude[k]
			if mag == 0 || math.IsInf(mag, 0) {
				continue
			}
			ux, uy := q.Field.Ux[k], q.Field.Uy[k]

			tailX, tailY := x-ux*half, y-uy*half
			tipX, tipY := x+ux*half, y+uy*half

			// barbs at ±150° from the arrow direction
			cos, sin := math.Cos(5*math.Pi/6), math.Sin(5*math.Pi/6)
			lx := tipX + head*(ux*cos-uy*sin)
			ly := tipY + head*(ux*sin+uy*cos)
			rx := tipX + head*(ux*cos+uy*sin)
			ry := tipY + head*(-ux*sin+uy*cos)

			sty := draw.LineStyle{Color: q.color(mag), Width: q.Width}
			c.StrokeLines(sty,
				[]vg.Point{{X: trX(tailX), Y: trY(tailY)}, {X: trX(tipX), Y: trY(tipY)}},
				[]vg.Point{{X: trX(lx), Y: trY(ly)}, {X: trX(tipX), Y: trY(tipY)}, {X: trX(rx), Y: trY(ry)}},
			)
		}
	}
}

func (q *Quiver) color(mag float64) color.Color {
	l := math.Log10(mag)
	l = math.Max(q.ColorMap.Min(), math.Min(q.ColorMap.Max(), l))
	col, err := q.ColorMap.At(l)
	if err != nil {
		return black
	}
	return col
}

func (q *Quiver) DataRange() (xmin, xmax, ymin, ymax float64) {
	m := q.Field.Mesh
	return m.Xs[0], m.Xs[len(m.Xs)-1], m.Ys[0], m.Ys[len(m.Ys)-1]
}
