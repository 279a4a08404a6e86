// Package mesh provides rectangular sample grids and scalar fields over
// them. A ScalarField satisfies gonum/plot's GridXYZ so it can be handed
// directly to heat map and contour plotters.
package mesh

import (
	"math"
	"sort"

	"github.com/san-kum/physlab/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Mesh is the cartesian product of Xs and Ys. Index i runs along x,
// j along y; flat storage is row-major in j.
type Mesh struct {
	Xs []float64
	Ys []float64
}

func New(xmin, xmax float64, nx int, ymin, ymax float64, ny int) *Mesh {
	return &Mesh{
		Xs: Linspace(xmin, xmax, nx),
		Ys: Linspace(ymin, ymax, ny),
	}
}

// Square is a mesh over [-extent, extent]² with n points per axis.
func Square(extent float64, n int) *Mesh {
	return New(-extent, extent, n, -extent, extent, n)
}

func (m *Mesh) Nx() int  { return len(m.Xs) }
func (m *Mesh) Ny() int  { return len(m.Ys) }
func (m *Mesh) Len() int { return len(m.Xs) * len(m.Ys) }

func (m *Mesh) At(i, j int) (x, y float64) {
	return m.Xs[i], m.Ys[j]
}

func (m *Mesh) Index(i, j int) int {
	return j*len(m.Xs) + i
}

// Sample evaluates fn at every mesh point. Rows are evaluated in parallel;
// fn must be safe for concurrent use.
func (m *Mesh) Sample(fn func(x, y float64) float64) *ScalarField {
	values := make([]float64, m.Len())
	nx := m.Nx()
	dynamo.ParallelFor(m.Ny(), 8, func(start, end int) {
		for j := start; j < end; j++ {
			y := m.Ys[j]
			for i := 0; i < nx; i++ {
				values[j*nx+i] = fn(m.Xs[i], y)
			}
		}
	})
	return &ScalarField{Mesh: m, Values: values}
}

type ScalarField struct {
	*Mesh
	Values []float64
}

func (f *ScalarField) Dims() (c, r int)   { return f.Nx(), f.Ny() }
func (f *ScalarField) Z(c, r int) float64 { return f.Values[f.Index(c, r)] }
func (f *ScalarField) X(c int) float64    { return f.Xs[c] }
func (f *ScalarField) Y(r int) float64    { return f.Ys[r] }

// Min returns the smallest finite value, NaN if there is none.
func (f *ScalarField) Min() float64 {
	lo, _ := f.finiteRange()
	return lo
}

// Max returns the largest finite value, NaN if there is none.
func (f *ScalarField) Max() float64 {
	_, hi := f.finiteRange()
	return hi
}

func (f *ScalarField) finiteRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

// Levels returns n contour levels strictly inside the finite value range.
func (f *ScalarField) Levels(n int) []float64 {
	lo, hi := f.finiteRange()
	if n <= 0 || math.IsNaN(lo) || lo == hi {
		return nil
	}
	step := (hi - lo) / float64(n+1)
	levels := make([]float64, n)
	for k := range levels {
		levels[k] = lo + float64(k+1)*step
	}
	return levels
}

// Clamp returns a copy with values limited to [lo, hi]. Non-finite values
// are clamped too, so a singular point shows as the extreme color.
func (f *ScalarField) Clamp(lo, hi float64) *ScalarField {
	values := make([]float64, len(f.Values))
	for k, v := range f.Values {
		switch {
		case math.IsNaN(v):
			values[k] = v
		case v < lo:
			values[k] = lo
		case v > hi:
			values[k] = hi
		default:
			values[k] = v
		}
	}
	return &ScalarField{Mesh: f.Mesh, Values: values}
}

// AbsQuantile returns the q-quantile (0..1) of |v| over finite values.
func (f *ScalarField) AbsQuantile(q float64) float64 {
	abs := make([]float64, 0, len(f.Values))
	for _, v := range f.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		abs = append(abs, math.Abs(v))
	}
	if len(abs) == 0 {
		return math.NaN()
	}
	sort.Float64s(abs)
	q = math.Max(0, math.Min(1, q))
	return abs[int(q*float64(len(abs)-1))]
}
