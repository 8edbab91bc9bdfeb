package lidar

import "github.com/fogleman/pt/pt"

// StructuredCloud is an organized point cloud: Width*Height points addressed by (column, row)
// and packed row by row, so iteration over Points visits the column index fastest.
//
// For a Simulator the row is the latitude index and the column the longitude index.
type StructuredCloud struct {
	Width  int
	Height int
	Points []pt.Vector
}

// NewStructuredCloud returns a cloud of width*height zero points.
func NewStructuredCloud(width, height int) *StructuredCloud {
	c := &StructuredCloud{}
	c.Resize(width, height)
	return c
}

// Resize sets the cloud shape, reusing the backing array when it is large enough.
// Existing points are not preserved in any meaningful position.
func (c *StructuredCloud) Resize(width, height int) {
	n := width * height
	if cap(c.Points) >= n {
		c.Points = c.Points[:n]
	} else {
		c.Points = make([]pt.Vector, n)
	}
	c.Width = width
	c.Height = height
}

// Size returns the number of points.
func (c *StructuredCloud) Size() int {
	return len(c.Points)
}

// At returns the point at column col and row row.
func (c *StructuredCloud) At(col, row int) pt.Vector {
	return c.Points[c.index(col, row)]
}

// Set stores p at column col and row row.
func (c *StructuredCloud) Set(col, row int, p pt.Vector) {
	c.Points[c.index(col, row)] = p
}

func (c *StructuredCloud) index(col, row int) int {
	if col < 0 || col >= c.Width || row < 0 || row >= c.Height {
		panic("lidar: cloud index out of range")
	}
	return row*c.Width + col
}

// Returns filters out the no-return points, keeping the order of Points.
func (c *StructuredCloud) Returns() []pt.Vector {
	out := make([]pt.Vector, 0, len(c.Points))
	for _, p := range c.Points {
		if !IsNoReturn(p.Length()) {
			out = append(out, p)
		}
	}
	return out
}
