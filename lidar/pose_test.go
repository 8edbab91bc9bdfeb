package lidar

import (
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		pose   Pose
		point  pt.Vector
		expect pt.Vector
	}{
		{"identity", IdentityPose(), V(1, 2, 3), V(1, 2, 3)},
		{"zero_value", Pose{}, V(1, 2, 3), V(1, 2, 3)},
		{"zero_axis", NewPose(V(0, 0, 0), V(0, 0, 0), 1), V(1, 2, 3), V(1, 2, 3)},
		{"yaw_90deg", NewPose(V(0, 0, 0), V(0, 0, 1), math.Pi/2), V(1, 0, 0), V(0, 1, 0)},
		{"yaw_180deg", NewPose(V(0, 0, 0), V(0, 0, 5), math.Pi), V(1, 1, 0), V(-1, -1, 0)},
		{"roll_90deg", NewPose(V(0, 0, 0), V(1, 0, 0), math.Pi/2), V(0, 1, 0), V(0, 0, 1)},
		{"pitch_90deg", NewPose(V(0, 0, 0), V(0, 1, 0), math.Pi/2), V(1, 0, 0), V(0, 0, -1)},
		{"diagonal_120deg", NewPose(V(0, 0, 0), V(1, 1, 1), 2*math.Pi/3), V(1, 0, 0), V(0, 1, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vecNear(t, test.expect, test.pose.Rotate(test.point))
		})
	}
}

func TestApplyComposeInverse(t *testing.T) {
	a := NewPose(V(1, 2, 3), V(0, 0, 1), math.Pi/2)
	b := NewPose(V(-1, 0, 4), V(1, 2, -1), 0.8)
	points := []pt.Vector{V(0, 0, 0), V(1, 0, 0), V(-3, 2, 7)}

	vecNear(t, V(1, 3, 3), a.Apply(V(1, 0, 0)))
	for _, p := range points {
		vecNear(t, a.Apply(b.Apply(p)), a.Compose(b).Apply(p))
		vecNear(t, p, a.Inverse().Apply(a.Apply(p)))
		vecNear(t, p, b.Compose(b.Inverse()).Apply(p))
	}
}

func TestPoseRay(t *testing.T) {
	pose := NewPose(V(1, 1, 1), V(0, 0, 1), math.Pi)
	ray := pose.Ray(V(1, 0, 0))
	assert.Equal(t, V(1, 1, 1), ray.Origin)
	vecNear(t, V(-1, 0, 0), ray.Direction)
	assert.InDelta(t, 1, ray.Direction.Length(), eps)
}

func TestTranslated(t *testing.T) {
	vecNear(t, V(2, 3, 4), Translated(V(1, 1, 1)).Apply(V(1, 2, 3)))
}
