package lidar

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RangeStats summarizes a range grid.
type RangeStats struct {
	Cells   int
	Returns int
	// Min and Max are over returns only; both are NaN when there are none.
	Min, Max float64
}

// Stats computes RangeStats for a range grid.
func Stats(ranges *mat.Dense) RangeStats {
	rows, cols := ranges.Dims()
	s := RangeStats{Cells: rows * cols, Min: math.Inf(1), Max: math.Inf(-1)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r := ranges.At(i, j)
			if IsNoReturn(r) {
				continue
			}
			s.Returns++
			s.Min = math.Min(s.Min, r)
			s.Max = math.Max(s.Max, r)
		}
	}
	if s.Returns == 0 {
		s.Min, s.Max = math.NaN(), math.NaN()
	}
	return s
}
