package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
)

const (
	DefaultLoopMass   = 3.0
	DefaultLoopMu     = 0.03
	DefaultLoopRadius = 3.0
	DefaultLoopG      = 9.8
)

// DefaultLoopAlpha is the detachment angle, 7π/6 measured from the bottom.
var DefaultLoopAlpha = math.Pi + math.Pi/6

// Loop is a body sliding along a vertical circular arc of radius R that
// starts at the bottom (0, 0) and leaves the track at angle Alpha.
type Loop struct {
	Mass   float64
	Mu     float64
	Radius float64
	Alpha  float64
	G      float64
}

func NewLoop() *Loop {
	return &Loop{
		Mass:   DefaultLoopMass,
		Mu:     DefaultLoopMu,
		Radius: DefaultLoopRadius,
		Alpha:  DefaultLoopAlpha,
		G:      DefaultLoopG,
	}
}

func (l *Loop) Validate() error {
	if !(l.Radius > 0) || !(l.G > 0) {
		return fmt.Errorf("%w: radius and g must be positive", dynamo.ErrParameterBounds)
	}
	if !(l.Mass > 0) {
		return fmt.Errorf("%w: mass must be positive, got %g", dynamo.ErrParameterBounds, l.Mass)
	}
	return nil
}

// EntrySpeed is the speed required at the bottom of the loop for the
// detachment at 7π/6 with friction coefficient Mu.
func (l *Loop) EntrySpeed() float64 {
	v2 := 2 * l.G * l.Radius * (7.0/4 - l.Mu*math.Sqrt(3)/2)
	if v2 < 0 {
		return 0
	}
	return math.Sqrt(v2)
}

// DetachSpeed is the speed at which the normal force vanishes.
func (l *Loop) DetachSpeed() float64 {
	return math.Sqrt(l.G * l.Radius / 2)
}

func (l *Loop) DetachPoint() Point {
	return Point{
		X: l.Radius * math.Sin(l.Alpha),
		Y: l.Radius * (1 - math.Cos(l.Alpha)),
	}
}

// Projectile is the free flight after detachment, launched along α + π/2.
func (l *Loop) Projectile() Projectile {
	p := l.DetachPoint()
	v := l.DetachSpeed()
	phi := l.Alpha + math.Pi/2
	return Projectile{
		X0: p.X, Y0: p.Y,
		VX: v * math.Cos(phi),
		VY: v * math.Sin(phi),
		G:  l.G,
	}
}

// Arc samples the track from the bottom to the detach point.
func (l *Loop) Arc(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		theta := 0.0
		if n > 1 {
			theta = l.Alpha * float64(i) / float64(n-1)
		}
		pts[i] = Point{X: l.Radius * math.Sin(theta), Y: l.Radius * (1 - math.Cos(theta))}
	}
	return pts
}

func (l *Loop) GetParams() map[string]float64 {
	return map[string]float64{"mass": l.Mass, "mu": l.Mu, "radius": l.Radius, "alpha": l.Alpha, "g": l.G}
}
