package lidar

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// NoReturnColor is drawn for cells with no return, as RGB in [0, 1].
var NoReturnColor = [3]float64{0.6, 0.1, 0.1}

// RangeImage draws the grid as a greyscale image, one cellSize x cellSize square per cell with
// row 0 at the top. Near returns are bright and ranges at or beyond maxRange are black.
func RangeImage(ranges *mat.Dense, maxRange float64, cellSize int) image.Image {
	if cellSize < 1 {
		cellSize = 1
	}
	rows, cols := ranges.Dims()
	c := gg.NewContext(cols*cellSize, rows*cellSize)
	size := float64(cellSize)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r := ranges.At(i, j)
			if IsNoReturn(r) {
				c.SetRGB(NoReturnColor[0], NoReturnColor[1], NoReturnColor[2])
			} else {
				g := 1 - math.Min(r/maxRange, 1)
				c.SetRGB(g, g, g)
			}
			c.DrawRectangle(float64(j)*size, float64(i)*size, size, size)
			c.Fill()
		}
	}
	return c.Image()
}

// SaveRangeImage writes RangeImage to a PNG file.
func SaveRangeImage(path string, ranges *mat.Dense, maxRange float64, cellSize int) error {
	return gg.SavePNG(path, RangeImage(ranges, maxRange, cellSize))
}

type profile struct {
	ranges     *mat.Dense
	row        int
	longitudes []float64
}

// xys collects the returns of one row, dropping no-return cells.
func (p profile) xys() plotter.XYs {
	_, cols := p.ranges.Dims()
	pts := make(plotter.XYs, 0, cols)
	for j := 0; j < cols; j++ {
		r := p.ranges.At(p.row, j)
		if IsNoReturn(r) {
			continue
		}
		pts = append(pts, plotter.XY{X: p.longitudes[j] * 180 / math.Pi, Y: r})
	}
	return pts
}

// SaveRangeProfile plots range against longitude for a single latitude row of the grid.
func SaveRangeProfile(path string, ranges *mat.Dense, row int, longitudes []float64) error {
	rows, cols := ranges.Dims()
	if row < 0 || row >= rows {
		return fmt.Errorf("row %d outside grid of %d rows", row, rows)
	}
	if len(longitudes) != cols {
		return fmt.Errorf("got %d longitudes for %d columns", len(longitudes), cols)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Range profile, row %d", row)
	p.X.Label.Text = "Longitude (deg)"
	p.Y.Label.Text = "Range (m)"

	s, err := plotter.NewScatter(profile{ranges: ranges, row: row, longitudes: longitudes}.xys())
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s, plotter.NewGrid())
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
