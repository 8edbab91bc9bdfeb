// Package lidar simulates a rotating-beam laser range finder against a scene of infinite planes.
//
// A Simulator owns a fixed grid of beam angles. For every (latitude, longitude) pair it casts a
// ray from the sensor pose and reports the distance to the nearest plane in front of the sensor,
// optionally along with the matching organized point cloud in the sensor frame.
package lidar

import (
	"math"

	"github.com/fogleman/pt/pt"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NoReturn is the range reported for a beam that strikes no plane. It is larger than any range a
// real scene produces; use IsNoReturn rather than comparing for equality.
const NoReturn = 1e99

// NoReturnThreshold is the range above which a value is treated as NoReturn.
const NoReturnThreshold = 1e98

// angleTolerance absorbs rounding in angle grids built from pi.
const angleTolerance = 0.001

var (
	ErrEmptyAngles         = errors.New("lidar: latitudes and longitudes must each have at least one value")
	ErrLatitudeOutOfRange  = errors.New("lidar: latitude outside [-pi/2, pi/2]")
	ErrLongitudeOutOfRange = errors.New("lidar: longitude outside [-pi, pi]")
	ErrShapeMismatch       = errors.New("lidar: range buffer does not match the angle grid")
)

// IsNoReturn reports whether r is the no-return sentinel.
func IsNoReturn(r float64) bool {
	return r > NoReturnThreshold
}

// Simulator casts one beam per (latitude, longitude) pair. It is immutable after construction and
// safe for concurrent use as long as each call writes to its own buffers.
type Simulator struct {
	latitudes  []float64
	longitudes []float64
}

// NewSimulator returns a Simulator for the given beam angles, in radians. Latitudes are elevations
// above the sensor XY plane and must lie in [-pi/2, pi/2]; longitudes are azimuths from +X towards
// +Y and must lie in [-pi, pi]. Both slices are copied.
//
// For a 2D scanner pass a single latitude of 0. Span builds evenly spaced grids.
func NewSimulator(latitudes, longitudes []float64) (*Simulator, error) {
	if len(latitudes) == 0 || len(longitudes) == 0 {
		return nil, errors.Wrapf(ErrEmptyAngles, "got %d latitudes and %d longitudes", len(latitudes), len(longitudes))
	}
	for i, lat := range latitudes {
		if !(math.Abs(lat) <= math.Pi/2+angleTolerance) {
			return nil, errors.Wrapf(ErrLatitudeOutOfRange, "latitude[%d] = %v", i, lat)
		}
	}
	for j, lon := range longitudes {
		if !(math.Abs(lon) <= math.Pi+angleTolerance) {
			return nil, errors.Wrapf(ErrLongitudeOutOfRange, "longitude[%d] = %v", j, lon)
		}
	}
	return &Simulator{
		latitudes:  append([]float64(nil), latitudes...),
		longitudes: append([]float64(nil), longitudes...),
	}, nil
}

// Height is the number of latitudes, i.e. rows of the range grid.
func (s *Simulator) Height() int {
	return len(s.latitudes)
}

// Width is the number of longitudes, i.e. columns of the range grid.
func (s *Simulator) Width() int {
	return len(s.longitudes)
}

// Latitudes returns a copy of the latitude grid.
func (s *Simulator) Latitudes() []float64 {
	return append([]float64(nil), s.latitudes...)
}

// Longitudes returns a copy of the longitude grid.
func (s *Simulator) Longitudes() []float64 {
	return append([]float64(nil), s.longitudes...)
}

// Direction returns the unit sensor-frame beam direction of row i, column j.
func (s *Simulator) Direction(i, j int) pt.Vector {
	return spherical(s.latitudes[i], s.longitudes[j])
}

// Ranges returns a newly allocated Height x Width grid of ranges from pose to the nearest plane
// of scene.
func (s *Simulator) Ranges(scene []Plane, pose Pose) *mat.Dense {
	dst := mat.NewDense(s.Height(), s.Width(), nil)
	s.cast(dst, nil, scene, pose)
	return dst
}

// RangesInto fills dst with the ranges from pose to the nearest plane of scene.
//
// dst must be Height x Width, otherwise ErrShapeMismatch is returned and dst is left untouched.
// An empty dst is resized, as with gonum receivers.
func (s *Simulator) RangesInto(dst *mat.Dense, scene []Plane, pose Pose) error {
	if err := s.checkShape(dst); err != nil {
		return err
	}
	s.cast(dst, nil, scene, pose)
	return nil
}

// Scan is Ranges plus the organized point cloud of the returns, in the sensor frame.
func (s *Simulator) Scan(scene []Plane, pose Pose) (*mat.Dense, *StructuredCloud) {
	dst := mat.NewDense(s.Height(), s.Width(), nil)
	cloud := NewStructuredCloud(s.Width(), s.Height())
	s.cast(dst, cloud, scene, pose)
	return dst, cloud
}

// ScanInto is RangesInto plus the point cloud. cloud is resized to Width x Height whatever its
// previous shape; it is not modified if the range buffer is rejected.
func (s *Simulator) ScanInto(dst *mat.Dense, cloud *StructuredCloud, scene []Plane, pose Pose) error {
	if err := s.checkShape(dst); err != nil {
		return err
	}
	if cloud == nil {
		return errors.New("lidar: nil point cloud")
	}
	cloud.Resize(s.Width(), s.Height())
	s.cast(dst, cloud, scene, pose)
	return nil
}

func (s *Simulator) checkShape(dst *mat.Dense) error {
	if dst == nil {
		return errors.Wrap(ErrShapeMismatch, "nil range buffer")
	}
	if dst.IsEmpty() {
		dst.ReuseAs(s.Height(), s.Width())
		return nil
	}
	if r, c := dst.Dims(); r != s.Height() || c != s.Width() {
		return errors.Wrapf(ErrShapeMismatch, "got %dx%d, want %dx%d", r, c, s.Height(), s.Width())
	}
	return nil
}

// cast walks the grid row by row. cloud may be nil.
func (s *Simulator) cast(dst *mat.Dense, cloud *StructuredCloud, scene []Plane, pose Pose) {
	for i := range s.latitudes {
		for j := range s.longitudes {
			dir := s.Direction(i, j)
			r := nearest(pose.Ray(dir), scene)
			dst.Set(i, j, r)
			if cloud != nil {
				cloud.Set(j, i, dir.MulScalar(r))
			}
		}
	}
}

// nearest returns the smallest strictly positive intersection parameter of ray with the planes,
// or NoReturn.
func nearest(ray pt.Ray, scene []Plane) float64 {
	minDist := NoReturn
	for _, p := range scene {
		if t := p.IntersectionParameter(ray); t > 0 && t < minDist {
			minDist = t
		}
	}
	return minDist
}
