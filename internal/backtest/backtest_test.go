package backtest

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphapanel/internal/panel"
)

func mkAxes(days int, symbols []string) *panel.Axes {
	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
	}
	return panel.NewAxes(dates, symbols)
}

func TestRunPicksHighestScores(t *testing.T) {
	axes := mkAxes(3, []string{"A", "B", "C"})

	// A doubles daily, B is flat, C halves. The factor always ranks A first.
	close := panel.NewMatrix(axes)
	factor := panel.NewMatrix(axes)
	prices := map[int][]float64{
		0: {100, 100, 100},
		1: {200, 100, 50},
		2: {400, 100, 25},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			close.Set(i, j, prices[i][j])
			factor.Set(i, j, float64(2-j))
		}
	}

	res, err := Run(factor, close, Config{TopN: 1})
	require.NoError(t, err)
	require.Len(t, res.DailyReturns, 2)
	assert.InDelta(t, 1.0, res.DailyReturns[0], 1e-12)
	assert.InDelta(t, 1.0, res.DailyReturns[1], 1e-12)
	assert.InDelta(t, 3.0, res.CumulativeReturn, 1e-12)
	assert.Equal(t, 1.0, res.HitRate)
	assert.Equal(t, axes.Date(0), res.Dates[0])
}

func TestRunEqualWeightsTopN(t *testing.T) {
	axes := mkAxes(2, []string{"A", "B", "C"})
	close := panel.NewMatrix(axes)
	factor := panel.NewMatrix(axes)

	// A +10%, B -10%, C +50%; factor selects A and B.
	day0 := []float64{100, 100, 100}
	day1 := []float64{110, 90, 150}
	score := []float64{3, 2, 1}
	for j := 0; j < 3; j++ {
		close.Set(0, j, day0[j])
		close.Set(1, j, day1[j])
		factor.Set(0, j, score[j])
		factor.Set(1, j, score[j])
	}

	res, err := Run(factor, close, Config{TopN: 2})
	require.NoError(t, err)
	require.Len(t, res.DailyReturns, 1)
	assert.InDelta(t, 0.0, res.DailyReturns[0], 1e-12)
}

func TestRunSkipsThinDates(t *testing.T) {
	axes := mkAxes(3, []string{"A", "B"})
	close := panel.NewMatrix(axes)
	factor := panel.NewMatrix(axes)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			close.Set(i, j, 100)
		}
	}
	// Only one valid factor cell on every date.
	factor.Set(0, 0, 1)
	factor.Set(1, 0, 1)

	res, err := Run(factor, close, Config{TopN: 2})
	require.NoError(t, err)
	assert.Empty(t, res.DailyReturns)
	assert.Zero(t, res.CumulativeReturn)
}

func TestRunSkipFirstDays(t *testing.T) {
	axes := mkAxes(4, []string{"A"})
	close := panel.NewMatrix(axes)
	factor := panel.NewMatrix(axes)
	for i := 0; i < 4; i++ {
		close.Set(i, 0, 100+float64(i))
		factor.Set(i, 0, 1)
	}

	res, err := Run(factor, close, Config{TopN: 1, SkipFirstDays: 2})
	require.NoError(t, err)
	require.Len(t, res.DailyReturns, 1)
	assert.Equal(t, axes.Date(2), res.Dates[0])
}

func TestRunValidation(t *testing.T) {
	axes := mkAxes(2, []string{"A"})
	m := panel.NewMatrix(axes)

	_, err := Run(m, m, Config{TopN: 0})
	assert.Error(t, err)

	other := panel.NewMatrix(mkAxes(3, []string{"A", "B"}))
	_, err = Run(m, other, Config{TopN: 1})
	assert.Error(t, err)
}

func TestSharpeAnnualization(t *testing.T) {
	r := &Result{DailyReturns: []float64{0.01, 0.02, 0.01, 0.02}}
	r.finalize(252)

	mean := 0.015
	std := math.Sqrt((4 * 0.005 * 0.005) / 3)
	assert.InDelta(t, mean/std*math.Sqrt(252), r.Sharpe, 1e-9)
}
