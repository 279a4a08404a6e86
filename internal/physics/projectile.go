package physics

import (
	"errors"
	"math"
)

var ErrNoLanding = errors.New("physics: trajectory never reaches y = 0")

type Point struct{ X, Y float64 }

// Projectile is ballistic motion under constant gravity G (pointing -y).
type Projectile struct {
	X0, Y0 float64
	VX, VY float64
	G      float64
}

func (p Projectile) Position(t float64) Point {
	return Point{
		X: p.X0 + p.VX*t,
		Y: p.Y0 + p.VY*t - 0.5*p.G*t*t,
	}
}

// LandingTime is the non-negative root of y0 + vy·t − ½g·t² = 0 reached
// while falling.
func (p Projectile) LandingTime() (float64, error) {
	if !(p.G > 0) {
		return 0, ErrNoLanding
	}
	disc := p.VY*p.VY + 2*p.G*p.Y0
	if disc < 0 {
		return 0, ErrNoLanding
	}
	t := (p.VY + math.Sqrt(disc)) / p.G
	if t < 0 {
		return 0, ErrNoLanding
	}
	return t, nil
}

// Path samples n points from launch to landing.
func (p Projectile) Path(n int) ([]Point, error) {
	tf, err := p.LandingTime()
	if err != nil {
		return nil, err
	}
	pts := make([]Point, n)
	for i := range pts {
		t := 0.0
		if n > 1 {
			t = tf * float64(i) / float64(n-1)
		}
		pts[i] = p.Position(t)
	}
	return pts, nil
}
