package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankPercentileWithinRow(t *testing.T) {
	x := mk(t, [][]float64{
		{30, 10, 20, 40},
	})
	got := Rank(x)
	assertCells(t, []float64{0.75}, col(got, 0))
	assertCells(t, []float64{0.25}, col(got, 1))
	assertCells(t, []float64{0.50}, col(got, 2))
	assertCells(t, []float64{1.00}, col(got, 3))
}

func TestRankTiesShareSmallestRank(t *testing.T) {
	x := mk(t, [][]float64{
		{5, 5, 1, 9},
	})
	got := Rank(x)
	// Both fives rank above one value, sharing rank 2 of 4.
	assertCells(t, []float64{0.5}, col(got, 0))
	assertCells(t, []float64{0.5}, col(got, 1))
	assertCells(t, []float64{0.25}, col(got, 2))
	assertCells(t, []float64{1.0}, col(got, 3))
}

func TestRankExcludesMissing(t *testing.T) {
	x := mk(t, [][]float64{
		{3, nan, 1},
	})
	got := Rank(x)
	// Two valid cells; the missing one stays missing.
	assertCells(t, []float64{1.0}, col(got, 0))
	assert.True(t, math.IsNaN(got.At(0, 1)))
	assertCells(t, []float64{0.5}, col(got, 2))
}

func TestRankBoundsAndConstantRow(t *testing.T) {
	x := mk(t, [][]float64{
		{7, 7, 7},
	})
	got := Rank(x)
	for j := 0; j < 3; j++ {
		assert.InDelta(t, 1.0/3, got.At(0, j), 1e-12)
	}

	y := mk(t, [][]float64{{-2, 0, 5, 1}})
	r := Rank(y)
	for j := 0; j < 4; j++ {
		v := r.At(0, j)
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestScaleNormalizesAbsoluteSum(t *testing.T) {
	x := mk(t, [][]float64{
		{2, -2, 4},
	})
	got := Scale(x, 1)
	assertCells(t, []float64{0.25}, col(got, 0))
	assertCells(t, []float64{-0.25}, col(got, 1))
	assertCells(t, []float64{0.5}, col(got, 2))

	sum := 0.0
	for j := 0; j < 3; j++ {
		sum += math.Abs(got.At(0, j))
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestScaleZeroSumRowStaysMissing(t *testing.T) {
	x := mk(t, [][]float64{
		{0, 0, nan},
	})
	got := Scale(x, 1)
	for j := 0; j < 3; j++ {
		assert.True(t, math.IsNaN(got.At(0, j)))
	}
}
