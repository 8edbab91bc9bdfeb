package lidar

import (
	"math"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/num/quat"
)

// Pose is a rigid transform from the sensor frame into the scene frame: a point x in the sensor
// frame is at Rotation*x*conj(Rotation) + Translation in the scene.
//
// Rotation should be a unit quaternion. The zero quaternion is treated as the identity so that
// the zero Pose places the sensor at the origin, looking down +X.
type Pose struct {
	Rotation    quat.Number
	Translation pt.Vector
}

// IdentityPose returns the pose that leaves every point where it is.
func IdentityPose() Pose {
	return Pose{Rotation: quat.Number{Real: 1}}
}

// NewPose returns the pose rotating by angle radians about axis, then translating.
// A zero axis yields no rotation.
func NewPose(translation, axis pt.Vector, angle float64) Pose {
	l := axis.Length()
	if l == 0 {
		return Pose{Rotation: quat.Number{Real: 1}, Translation: translation}
	}
	s, c := math.Sincos(angle / 2)
	a := axis.MulScalar(s / l)
	return Pose{
		Rotation:    quat.Number{Real: c, Imag: a.X, Jmag: a.Y, Kmag: a.Z},
		Translation: translation,
	}
}

// Translated returns a pure translation.
func Translated(translation pt.Vector) Pose {
	return Pose{Rotation: quat.Number{Real: 1}, Translation: translation}
}

func (p Pose) rotation() quat.Number {
	if p.Rotation == (quat.Number{}) {
		return quat.Number{Real: 1}
	}
	return p.Rotation
}

// Rotate applies only the rotational part of the pose to v.
func (p Pose) Rotate(v pt.Vector) pt.Vector {
	q := p.rotation()
	r := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return V(r.Imag, r.Jmag, r.Kmag)
}

// Apply maps a sensor-frame point into the scene frame.
func (p Pose) Apply(v pt.Vector) pt.Vector {
	return p.Rotate(v).Add(p.Translation)
}

// Compose returns the pose equivalent to applying o first, then p.
func (p Pose) Compose(o Pose) Pose {
	return Pose{
		Rotation:    quat.Mul(p.rotation(), o.rotation()),
		Translation: p.Apply(o.Translation),
	}
}

// Inverse returns the pose mapping scene-frame points back into the sensor frame.
func (p Pose) Inverse() Pose {
	inv := Pose{Rotation: quat.Conj(p.rotation())}
	inv.Translation = inv.Rotate(p.Translation).MulScalar(-1)
	return inv
}

// Ray returns the scene-frame ray leaving the sensor origin along the sensor-frame direction dir.
func (p Pose) Ray(dir pt.Vector) pt.Ray {
	return pt.Ray{Origin: p.Translation, Direction: p.Rotate(dir)}
}
