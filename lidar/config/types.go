package config

// ScanConfig represents the complete configuration for a simulated LIDAR run
type ScanConfig struct {
	Metadata   Metadata   `yaml:"metadata"`
	Sensor     Sensor     `yaml:"sensor"`
	Scene      Scene      `yaml:"scene"`
	Trajectory []PoseSpec `yaml:"trajectory"`
	Output     Output     `yaml:"output"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Sensor struct {
	Latitudes  AngleGrid `yaml:"latitudes"`
	Longitudes AngleGrid `yaml:"longitudes"`
}

// AngleGrid is given by exactly one of its fields. All angles are in degrees.
type AngleGrid struct {
	Values  []float64    `yaml:"values,omitempty"`
	Span    *SpanSpec    `yaml:"span,omitempty"`
	Profile *ProfileSpec `yaml:"profile,omitempty"`
}

type SpanSpec struct {
	MinDeg float64 `yaml:"min_deg"`
	MaxDeg float64 `yaml:"max_deg"`
	Count  int     `yaml:"count"`
}

type ProfileSpec struct {
	Knots map[float64]float64 `yaml:"knots"` // beam index -> degrees
	Count int                 `yaml:"count"`
}

type Scene struct {
	Planes Planes `yaml:"planes"`
}

type Planes struct {
	Inline   []PlaneSpec `yaml:"inline,omitempty"`
	FromFile string      `yaml:"from_file,omitempty"`
}

// PlaneSpec is either {normal, offset} or {point, normal}.
type PlaneSpec struct {
	Name   string      `yaml:"name,omitempty" json:"name,omitempty"`
	Normal [3]float64  `yaml:"normal" json:"normal"`
	Offset float64     `yaml:"offset,omitempty" json:"offset,omitempty"`
	Point  *[3]float64 `yaml:"point,omitempty" json:"point,omitempty"`
}

type PoseSpec struct {
	Position [3]float64 `yaml:"position"`
	Axis     [3]float64 `yaml:"axis,omitempty"`
	AngleDeg float64    `yaml:"angle_deg,omitempty"`
}

type Output struct {
	Dir        string  `yaml:"dir,omitempty"`
	MaxRange   float64 `yaml:"max_range"`
	CellSize   int     `yaml:"cell_size,omitempty"`
	ProfileRow int     `yaml:"profile_row,omitempty"`
}
