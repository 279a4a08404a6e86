// Package electro computes the electrostatic field and potential of a set
// of point charges in the plane.
//
// Singular points (an evaluation point on top of a charge) substitute an
// infinite distance, so that charge contributes nothing there instead of
// producing an error.
package electro

import (
	"fmt"
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/mesh"
)

// CoulombK is Coulomb's constant in N·m²/C².
const CoulombK = 8.99e9

const (
	DefaultExtent = 2.0
	DefaultPoints = 50
	DefaultLevels = 20
)

type Charge struct {
	X, Y float64
	Q    float64 // coulombs
}

// Label renders the charge in nanocoulombs, e.g. "+1.0 nC".
func (c Charge) Label() string {
	if c.Q > 0 {
		return fmt.Sprintf("+%.1f nC", c.Q*1e9)
	}
	return fmt.Sprintf("%.1f nC", c.Q*1e9)
}

// FieldAt returns the field components at (x, y).
func FieldAt(charges []Charge, x, y float64) (ex, ey float64) {
	for _, c := range charges {
		dx, dy := x-c.X, y-c.Y
		r2 := dx*dx + dy*dy
		if r2 == 0 {
			r2 = math.Inf(1)
		}
		s := CoulombK * c.Q / (r2 * math.Sqrt(r2))
		ex += s * dx
		ey += s * dy
	}
	return ex, ey
}

// PotentialAt returns the scalar potential at (x, y) in volts.
func PotentialAt(charges []Charge, x, y float64) float64 {
	v := 0.0
	for _, c := range charges {
		r := math.Hypot(x-c.X, y-c.Y)
		if r == 0 {
			r = math.Inf(1)
		}
		v += CoulombK * c.Q / r
	}
	return v
}

// Field holds the field sampled over a mesh. Ux, Uy are unit direction
// vectors for display; they are zero where the magnitude is zero.
type Field struct {
	Mesh      *mesh.Mesh
	Ex, Ey    []float64
	Magnitude []float64
	Ux, Uy    []float64
}

func Compute(charges []Charge, m *mesh.Mesh) *Field {
	n := m.Len()
	f := &Field{
		Mesh:      m,
		Ex:        make([]float64, n),
		Ey:        make([]float64, n),
		Magnitude: make([]float64, n),
		Ux:        make([]float64, n),
		Uy:        make([]float64, n),
	}

	nx := m.Nx()
	dynamo.ParallelFor(m.Ny(), 8, func(start, end int) {
		for j := start; j < end; j++ {
			for i := 0; i < nx; i++ {
				k := j*nx + i
				ex, ey := FieldAt(charges, m.Xs[i], m.Ys[j])
				mag := math.Hypot(ex, ey)
				f.Ex[k], f.Ey[k], f.Magnitude[k] = ex, ey, mag
				if mag > 0 {
					f.Ux[k], f.Uy[k] = ex/mag, ey/mag
				}
			}
		}
	})

	return f
}

func Potential(charges []Charge, m *mesh.Mesh) *mesh.ScalarField {
	return m.Sample(func(x, y float64) float64 {
		return PotentialAt(charges, x, y)
	})
}

// NetCharge is the algebraic sum of all charges.
func NetCharge(charges []Charge) float64 {
	q := 0.0
	for _, c := range charges {
		q += c.Q
	}
	return q
}
