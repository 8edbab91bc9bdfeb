package lidar

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Plane is an infinite oriented plane in Hessian normal form: every point x on the plane
// satisfies Normal.Dot(x) + Offset == 0. Normal is unit length when built with NewPlane or MakePlane.
type Plane struct {
	Normal pt.Vector
	Offset float64
}

// NewPlane returns the plane normal.Dot(x) + offset == 0, normalizing the normal and scaling the
// offset to match.
func NewPlane(normal pt.Vector, offset float64) Plane {
	l := normal.Length()
	return Plane{Normal: normal.MulScalar(1 / l), Offset: offset / l}
}

// MakePlane returns the plane through point with the given normal.
func MakePlane(point, normal pt.Vector) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Offset: -n.Dot(point)}
}

// Point returns the point on the plane closest to the origin.
func (p Plane) Point() pt.Vector {
	return p.Normal.MulScalar(-p.Offset)
}

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(v pt.Vector) float64 {
	return p.Normal.Dot(v) + p.Offset
}

// IntersectionParameter returns t such that ray.Origin + t*ray.Direction lies on the plane.
//
// A ray parallel to the plane gives ±Inf, or NaN when the origin also lies on the plane.
func (p Plane) IntersectionParameter(ray pt.Ray) float64 {
	return -p.SignedDistance(ray.Origin) / p.Normal.Dot(ray.Direction)
}

// Transform maps the plane through pose, so that a point x on p lands on the returned plane at
// pose.Apply(x).
func (p Plane) Transform(pose Pose) Plane {
	n := pose.Rotate(p.Normal)
	return Plane{Normal: n, Offset: p.Offset - n.Dot(pose.Translation)}
}

// Valid reports whether the plane has a finite, non-degenerate normal and offset.
func (p Plane) Valid() bool {
	l := p.Normal.Length()
	return l > 0 && !math.IsNaN(l) && !math.IsInf(l, 0) && !math.IsNaN(p.Offset) && !math.IsInf(p.Offset, 0)
}
