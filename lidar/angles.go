package lidar

import (
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"
	"gonum.org/v1/gonum/floats"
)

// Span returns n evenly spaced values from min to max inclusive. n == 1 yields just min, which is
// the latitude grid of a single-plane scanner.
func Span(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{min}
	}
	return floats.Span(make([]float64, n), min, max)
}

// Degrees converts a slice of angles in degrees to radians.
func Degrees(deg []float64) []float64 {
	rad := make([]float64, len(deg))
	for i, d := range deg {
		rad[i] = d * math.Pi / 180
	}
	return rad
}

// BeamProfile describes sensors whose beams are not evenly spaced: knots map a beam index to its
// angle in degrees, and beams between knots are interpolated linearly.
type BeamProfile struct {
	f lin.Function
}

// NewBeamProfile returns a profile through the given (beam index -> degrees) knots. Beams outside
// the knots take the angle of the nearest end knot.
func NewBeamProfile(knots map[float64]float64) BeamProfile {
	x := make([]float64, 0, len(knots))
	for k := range knots {
		x = append(x, k)
	}
	sort.Float64s(x)
	y := make([]float64, len(x))
	for i, k := range x {
		y[i] = knots[k]
	}
	return BeamProfile{f: lin.Function{X: x, Y: y}}
}

// AtDegrees returns the interpolated angle of beam i in degrees.
func (b BeamProfile) AtDegrees(i float64) float64 {
	x, y := b.f.X, b.f.Y
	switch {
	case len(x) == 0:
		return 0
	case i <= x[0]:
		return y[0]
	case i >= x[len(x)-1]:
		return y[len(y)-1]
	}
	return b.f.At(i)
}

// Angles returns the angles of beams 0..count-1, in radians.
func (b BeamProfile) Angles(count int) []float64 {
	deg := make([]float64, count)
	for i := range deg {
		deg[i] = b.AtDegrees(float64(i))
	}
	return Degrees(deg)
}
