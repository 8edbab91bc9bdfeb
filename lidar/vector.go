package lidar

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Vector is the 3D vector type used for directions, normals and points.
type Vector = pt.Vector

// V is a shorthand constructor for pt.Vector
func V(X, Y, Z float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: Z}
}

// spherical returns the unit vector at the given latitude (elevation above the XY plane) and
// longitude (azimuth from +X towards +Y), both in radians.
func spherical(lat, lon float64) pt.Vector {
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	return V(cosLat*cosLon, cosLat*sinLon, sinLat)
}
