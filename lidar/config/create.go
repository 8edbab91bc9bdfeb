package config

import (
	"math"

	"github.com/jdginn/go-lidar-sim/lidar"
)

// Create returns the grid angles in radians, or nil if no form is given.
func (g AngleGrid) Create() []float64 {
	switch {
	case g.Values != nil:
		return lidar.Degrees(g.Values)
	case g.Span != nil:
		return lidar.Degrees(lidar.Span(g.Span.MinDeg, g.Span.MaxDeg, g.Span.Count))
	case g.Profile != nil:
		return lidar.NewBeamProfile(g.Profile.Knots).Angles(g.Profile.Count)
	}
	return nil
}

// Create builds the simulator for the configured angle grid.
func (s Sensor) Create() (*lidar.Simulator, error) {
	return lidar.NewSimulator(s.Latitudes.Create(), s.Longitudes.Create())
}

func vec(a [3]float64) lidar.Vector {
	return lidar.V(a[0], a[1], a[2])
}

// Create returns the plane, normalized. A point takes precedence over the offset.
func (p PlaneSpec) Create() lidar.Plane {
	if p.Point != nil {
		return lidar.MakePlane(vec(*p.Point), vec(p.Normal))
	}
	return lidar.NewPlane(vec(p.Normal), p.Offset)
}

// Create returns the scene planes. Call LoadAndMerge first to include planes from file.
func (s Scene) Create() []lidar.Plane {
	planes := make([]lidar.Plane, len(s.Planes.Inline))
	for i, p := range s.Planes.Inline {
		planes[i] = p.Create()
	}
	return planes
}

// Create returns the sensor pose.
func (p PoseSpec) Create() lidar.Pose {
	return lidar.NewPose(vec(p.Position), vec(p.Axis), p.AngleDeg*math.Pi/180)
}

// Poses returns every pose of the trajectory in order.
func (c *ScanConfig) Poses() []lidar.Pose {
	poses := make([]lidar.Pose, len(c.Trajectory))
	for i, p := range c.Trajectory {
		poses[i] = p.Create()
	}
	return poses
}
