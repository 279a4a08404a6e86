// Package potential defines scalar potential-energy fields U(x, y) that
// can be sampled over a mesh and contoured.
package potential

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/physlab/internal/mesh"
)

const (
	DefaultExtent = 10.0
	DefaultPoints = 100

	// softening keeps the gravitational potential finite at the origin
	softening = 1e-6
)

type Field interface {
	Name() string
	U(x, y float64) float64
}

// Gravity is the potential of two point masses separated by r.
type Gravity struct {
	G, M1, M2 float64
}

func (g Gravity) Name() string { return "gravity" }

func (g Gravity) U(x, y float64) float64 {
	return -g.G * g.M1 * g.M2 / math.Sqrt(x*x+y*y+softening)
}

// Elastic is an isotropic spring potential.
type Elastic struct {
	K float64
}

func (e Elastic) Name() string { return "elastic" }

func (e Elastic) U(x, y float64) float64 {
	return 0.5 * e.K * (x*x + y*y)
}

// Power is U = A·x^N + B·y^M. Fractional powers of negative coordinates
// yield NaN and are left out of the plot.
type Power struct {
	A, N, B, M float64
}

func (p Power) Name() string { return "power" }

func (p Power) U(x, y float64) float64 {
	return p.A*math.Pow(x, p.N) + p.B*math.Pow(y, p.M)
}

var kinds = map[string]struct {
	params []string
	build  func(v []float64) Field
}{
	"gravity": {
		params: []string{"G", "m1", "m2"},
		build:  func(v []float64) Field { return Gravity{G: v[0], M1: v[1], M2: v[2]} },
	},
	"elastic": {
		params: []string{"k"},
		build:  func(v []float64) Field { return Elastic{K: v[0]} },
	},
	"power": {
		params: []string{"a", "n", "b", "m"},
		build:  func(v []float64) Field { return Power{A: v[0], N: v[1], B: v[2], M: v[3]} },
	},
}

func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParamNames lists the parameters a kind requires, in order.
func ParamNames(kind string) ([]string, error) {
	k, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown field type: %s (available: %v)", kind, Kinds())
	}
	return append([]string(nil), k.params...), nil
}

// New builds a field of the given kind. Every listed parameter must be
// present; unknown parameter names are rejected.
func New(kind string, params map[string]float64) (Field, error) {
	k, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown field type: %s (available: %v)", kind, Kinds())
	}

	allowed := make(map[string]bool, len(k.params))
	for _, name := range k.params {
		allowed[name] = true
	}
	for name := range params {
		if !allowed[name] {
			return nil, fmt.Errorf("%s field has no parameter %q (expected %v)", kind, name, k.params)
		}
	}

	values := make([]float64, len(k.params))
	for i, name := range k.params {
		v, ok := params[name]
		if !ok {
			return nil, fmt.Errorf("%s field requires parameter %q", kind, name)
		}
		values[i] = v
	}
	return k.build(values), nil
}

func Sample(f Field, m *mesh.Mesh) *mesh.ScalarField {
	return m.Sample(f.U)
}
