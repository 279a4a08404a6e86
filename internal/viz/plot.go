package viz

import (
	"math"

	"github.com/san-kum/physlab/internal/physics"
)

// Bounds is the data rectangle mapped onto a canvas.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// BoundsOf returns the finite extent of points. Degenerate ranges are
// widened by one unit so the mapping stays defined.
func BoundsOf(points []physics.Point) Bounds {
	b := Bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	if b.MinX > b.MaxX {
		return Bounds{0, 1, 0, 1}
	}
	if b.MaxX == b.MinX {
		b.MinX, b.MaxX = b.MinX-0.5, b.MaxX+0.5
	}
	if b.MaxY == b.MinY {
		b.MinY, b.MaxY = b.MinY-0.5, b.MaxY+0.5
	}
	return b
}

// Project maps a data point to sub-pixel coordinates. The y axis points up.
func (c *Canvas) Project(b Bounds, p physics.Point) (int, int) {
	w, h := float64(c.Width*2-1), float64(c.Height*4-1)
	px := (p.X - b.MinX) / (b.MaxX - b.MinX) * w
	py := (b.MaxY - p.Y) / (b.MaxY - b.MinY) * h
	return int(math.Round(px)), int(math.Round(py))
}

// PlotXY draws the polyline through points scaled to fill the canvas.
func (c *Canvas) PlotXY(points []physics.Point) {
	c.PlotXYIn(BoundsOf(points), points)
}

// PlotXYIn draws points inside fixed bounds. Non-finite points break the line.
func (c *Canvas) PlotXYIn(b Bounds, points []physics.Point) {
	havePrev := false
	var px, py int
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			havePrev = false
			continue
		}
		x, y := c.Project(b, p)
		if havePrev {
			c.DrawLine(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py, havePrev = x, y, true
	}
}
