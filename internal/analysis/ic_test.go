package analysis

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
		dates[i] = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
	}
	return panel.NewAxes(dates, symbols)
}

func TestForwardReturns(t *testing.T) {
	axes := mkAxes(3, []string{"A"})
	close := panel.NewMatrix(axes)
	close.Set(0, 0, 100)
	close.Set(1, 0, 110)
	close.Set(2, 0, 99)

	fwd, err := ForwardReturns(close, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.10, fwd.At(0, 0), 1e-12)
	assert.InDelta(t, -0.10, fwd.At(1, 0), 1e-12)
	assert.True(t, math.IsNaN(fwd.At(2, 0)))

	_, err = ForwardReturns(close, 0)
	assert.Error(t, err)
}

func TestICPerfectMonotoneFactor(t *testing.T) {
	axes := mkAxes(2, []string{"A", "B", "C", "D"})
	factor := panel.NewMatrix(axes)
	fwd := panel.NewMatrix(axes)
	for j := 0; j < 4; j++ {
		factor.Set(0, j, float64(j))
		fwd.Set(0, j, 0.01*float64(j))

		factor.Set(1, j, float64(j))
		fwd.Set(1, j, -0.01*float64(j))
	}

	s, err := IC(factor, fwd)
	require.NoError(t, err)
	require.Len(t, s.Points, 2)
	assert.InDelta(t, 1.0, s.Points[0].IC, 1e-12)
	assert.InDelta(t, -1.0, s.Points[1].IC, 1e-12)
	assert.Equal(t, axes.Date(0), s.Points[0].Date)
}

func TestICSkipsThinAndDegenerateDates(t *testing.T) {
	axes := mkAxes(2, []string{"A", "B", "C"})
	factor := panel.NewMatrix(axes)
	fwd := panel.NewMatrix(axes)

	// Date 0: only two jointly valid cells.
	factor.Set(0, 0, 1)
	fwd.Set(0, 0, 0.01)
	factor.Set(0, 1, 2)
	fwd.Set(0, 1, 0.02)

	// Date 1: constant factor, zero variance.
	for j := 0; j < 3; j++ {
		factor.Set(1, j, 5)
		fwd.Set(1, j, 0.01*float64(j))
	}

	s, err := IC(factor, fwd)
	require.NoError(t, err)
	assert.Empty(t, s.Points)
}

func TestSummarize(t *testing.T) {
	s := &Series{Points: []Point{
		{IC: 0.1}, {IC: 0.3}, {IC: -0.1},
	}}
	st := s.Summarize()

	assert.Equal(t, 3, st.N)
	assert.InDelta(t, 0.1, st.Mean, 1e-12)
	assert.InDelta(t, 0.2, st.Std, 1e-12)
	assert.InDelta(t, 0.5, st.IR, 1e-12)
	assert.InDelta(t, 2.0/3, st.HitRate, 1e-12)

	empty := (&Series{}).Summarize()
	assert.Zero(t, empty.N)
	assert.Zero(t, empty.Mean)
}
