package ops

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphapanel/internal/panel"
)

var nan = math.NaN()

// mk builds a matrix from rows of literal values on synthetic axes.
func mk(t *testing.T, rows [][]float64) *panel.Matrix {
	t.Helper()
	require.NotEmpty(t, rows)
	dates := make([]time.Time, len(rows))
	for i := range dates {
		dates[i] = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
	}
	symbols := make([]string, len(rows[0]))
	for j := range symbols {
		symbols[j] = string(rune('A' + j))
	}
	m := panel.NewMatrix(panel.NewAxes(dates, symbols))
	for i, row := range rows {
		require.Len(t, row, len(symbols))
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

func col(m *panel.Matrix, j int) []float64 { return m.Column(j) }

func assertCells(t *testing.T, want []float64, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "row %d: want NaN, got %v", i, got[i])
			continue
		}
		assert.InDelta(t, want[i], got[i], 1e-9, "row %d", i)
	}
}

func TestTSSumWarmupAndMissing(t *testing.T) {
	x := mk(t, [][]float64{{1}, {2}, {nan}, {4}, {5}})
	got := TSSum(x, 2)
	// Any missing value inside the trailing window voids the cell.
	assertCells(t, []float64{nan, 3, nan, nan, 9}, col(got, 0))
}

func TestMeanAndStdDev(t *testing.T) {
	x := mk(t, [][]float64{{2}, {4}, {6}, {8}})
	assertCells(t, []float64{nan, nan, 4, 6}, col(Mean(x, 3), 0))

	// Sample std of {2,4,6} is 2.
	assertCells(t, []float64{nan, nan, 2, 2}, col(StdDev(x, 3), 0))
}

func TestTSMinMax(t *testing.T) {
	x := mk(t, [][]float64{{3}, {1}, {4}, {1}, {5}})
	assertCells(t, []float64{nan, nan, 1, 1, 1}, col(TSMin(x, 3), 0))
	assertCells(t, []float64{nan, nan, 4, 4, 5}, col(TSMax(x, 3), 0))
}

func TestTSRankTiesTakeSmallestRank(t *testing.T) {
	x := mk(t, [][]float64{{5}, {3}, {5}, {5}})
	// Both full windows hold one value strictly below the newest cell, so
	// the tied maxima share rank 2.
	assertCells(t, []float64{nan, nan, 2, 2}, col(TSRank(x, 3), 0))
}

func TestTSArgMaxIsOneBasedFirstOccurrence(t *testing.T) {
	x := mk(t, [][]float64{{9}, {1}, {9}, {2}})
	got := TSArgMax(x, 3)
	// Window {9,1,9}: ties resolve to the earliest offset.
	assertCells(t, []float64{nan, nan, 1, 2}, col(got, 0))

	gotMin := TSArgMin(x, 3)
	assertCells(t, []float64{nan, nan, 2, 1}, col(gotMin, 0))
}

func TestHighDayLowDay(t *testing.T) {
	x := mk(t, [][]float64{{1}, {5}, {2}, {3}})
	// Window {1,5,2}: max at offset 1 of 3 rows, so 2 rows back.
	assertCells(t, []float64{nan, nan, 2, 3}, col(HighDay(x, 3), 0))
	assertCells(t, []float64{nan, nan, 3, 2}, col(LowDay(x, 3), 0))
}

func TestProductAndCount(t *testing.T) {
	x := mk(t, [][]float64{{2}, {3}, {4}})
	assertCells(t, []float64{nan, 6, 12}, col(Product(x, 2), 0))

	c := mk(t, [][]float64{{1}, {0}, {1}, {1}})
	assertCells(t, []float64{nan, nan, 2, 2}, col(Count(c, 3), 0))
}

func TestDecayLinearWeights(t *testing.T) {
	x := mk(t, [][]float64{{1}, {2}, {3}})
	// Weights 1/6, 2/6, 3/6 oldest to newest.
	want := (1.0*1 + 2*2 + 3*3) / 6
	assertCells(t, []float64{nan, nan, want}, col(DecayLinear(x, 3), 0))

	flat := mk(t, [][]float64{{7}, {7}, {7}, {7}})
	assertCells(t, []float64{nan, nan, 7, 7}, col(DecayLinear(flat, 3), 0))
}

func TestDeltaDelay(t *testing.T) {
	x := mk(t, [][]float64{{10}, {12}, {15}})
	assertCells(t, []float64{nan, nan, 5}, col(Delta(x, 2), 0))
	assertCells(t, []float64{nan, 10, 12}, col(Delay(x, 1), 0))
}

func TestEMARecurrence(t *testing.T) {
	x := mk(t, [][]float64{{10}, {20}, {nan}, {30}})
	got := col(EMA(x, 2, 1), 0)

	assert.InDelta(t, 10, got[0], 1e-9)
	assert.InDelta(t, 15, got[1], 1e-9)
	// A missing cell carries the smoothed state forward.
	assert.InDelta(t, 15, got[2], 1e-9)
	assert.InDelta(t, 22.5, got[3], 1e-9)
}

func TestEMALeadingMissingStaysMissing(t *testing.T) {
	x := mk(t, [][]float64{{nan}, {nan}, {4}, {8}})
	got := col(EMA(x, 3, 1), 0)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 4, got[2], 1e-9)
	assert.InDelta(t, 4+(8.0-4)/3, got[3], 1e-9)
}

func TestCumSumSkipsMissing(t *testing.T) {
	x := mk(t, [][]float64{{1}, {nan}, {2}, {3}})
	assertCells(t, []float64{1, nan, 3, 6}, col(CumSum(x), 0))
}

func TestCorrelationCoercesDegenerateToZero(t *testing.T) {
	x := mk(t, [][]float64{{1}, {2}, {3}, {4}})
	flat := mk(t, [][]float64{{5}, {5}, {5}, {5}})

	// Zero variance on one side would be NaN; the primitive returns 0.
	assertCells(t, []float64{0, 0, 1, 1}, col(Correlation(x, x, 3), 0))
	assertCells(t, []float64{0, 0, 0, 0}, col(Correlation(x, flat, 3), 0))
}

func TestCovarianceValue(t *testing.T) {
	x := mk(t, [][]float64{{1}, {2}, {3}})
	y := mk(t, [][]float64{{2}, {4}, {6}})
	// Sample covariance of {1,2,3} with {2,4,6} is 2.
	assertCells(t, []float64{0, 0, 2}, col(Covariance(x, y, 3), 0))
}

func TestStructuralMisusePanics(t *testing.T) {
	x := mk(t, [][]float64{{1}, {2}})
	big := mk(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})

	assert.PanicsWithError(t, "ops.TSSum: window must be positive, got 0", func() {
		TSSum(x, 0)
	})
	assert.PanicsWithError(t, "ops.Delay: lag must be non-negative, got -1", func() {
		Delay(x, -1)
	})
	assert.PanicsWithError(t, "ops.EMA: smoothing must satisfy 0 < m <= n, got m=5 n=3", func() {
		EMA(x, 3, 5)
	})
	assert.Panics(t, func() { Correlation(x, big, 2) })
}
