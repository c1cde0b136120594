package ops

import (
	"math"

	"alphapanel/internal/panel"
)

// Rank replaces each cell with its percentile rank within its date row,
// in (0, 1]. Ties share the smallest rank. Missing cells are excluded
// from the ranking and stay missing.
func Rank(x *panel.Matrix) *panel.Matrix {
	out := panel.NewMatrix(x.Axes())
	for i := 0; i < x.Rows(); i++ {
		nValid := 0
		for j := 0; j < x.Cols(); j++ {
			if !math.IsNaN(x.At(i, j)) {
				nValid++
			}
		}
		if nValid == 0 {
			continue
		}
		for j := 0; j < x.Cols(); j++ {
			v := x.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			below := 0
			for k := 0; k < x.Cols(); k++ {
				u := x.At(i, k)
				if !math.IsNaN(u) && u < v {
					below++
				}
			}
			out.Set(i, j, float64(below+1)/float64(nValid))
		}
	}
	return out
}

// Scale rescales each date row so the absolute values of its valid cells
// sum to k. A row whose absolute sum is zero or undefined becomes missing.
func Scale(x *panel.Matrix, k float64) *panel.Matrix {
	out := panel.NewMatrix(x.Axes())
	for i := 0; i < x.Rows(); i++ {
		sum := 0.0
		for j := 0; j < x.Cols(); j++ {
			if v := x.At(i, j); !math.IsNaN(v) {
				sum += math.Abs(v)
			}
		}
		if sum == 0 || math.IsInf(sum, 0) {
			continue
		}
		for j := 0; j < x.Cols(); j++ {
			if v := x.At(i, j); !math.IsNaN(v) {
				out.Set(i, j, v*k/sum)
			}
		}
	}
	return out
}
