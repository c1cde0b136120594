package panel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func obs(date time.Time, symbol string, o, h, l, c, v float64) Row {
	return Row{
		Date:   date,
		Symbol: symbol,
		Fields: map[string]float64{
			FieldOpen: o, FieldHigh: h, FieldLow: l, FieldClose: c, FieldVolume: v,
		},
	}
}

func TestBuildBasicShape(t *testing.T) {
	rows := []Row{
		obs(day(0), "AAA", 10, 12, 9, 11, 100),
		obs(day(0), "BBB", 20, 22, 19, 21, 200),
		obs(day(1), "AAA", 11, 13, 10, 12, 110),
		obs(day(1), "BBB", 21, 23, 20, 22, 210),
	}
	p, err := Build(rows)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Axes().NumDates())
	assert.Equal(t, 2, p.Axes().NumSymbols())
	assert.Equal(t, day(0), p.Axes().Date(0))
	assert.Equal(t, day(1), p.Axes().Date(1))

	j, ok := p.Axes().Col("BBB")
	require.True(t, ok)
	assert.Equal(t, 21.0, p.Close().At(0, j))
	assert.Equal(t, 22.0, p.Close().At(1, j))
}

func TestBuildSortsUnsortedDates(t *testing.T) {
	rows := []Row{
		obs(day(5), "AAA", 1, 1, 1, 3, 10),
		obs(day(1), "AAA", 1, 1, 1, 1, 10),
		obs(day(3), "AAA", 1, 1, 1, 2, 10),
	}
	p, err := Build(rows)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{day(1), day(3), day(5)}, p.Axes().Dates())
	assert.Equal(t, 1.0, p.Close().At(0, 0))
	assert.Equal(t, 2.0, p.Close().At(1, 0))
	assert.Equal(t, 3.0, p.Close().At(2, 0))
}

func TestBuildDerivesVWAPAndReturns(t *testing.T) {
	rows := []Row{
		obs(day(0), "AAA", 10, 12, 8, 10, 100),
		obs(day(1), "AAA", 10, 14, 10, 12, 100),
	}
	p, err := Build(rows)
	require.NoError(t, err)

	assert.InDelta(t, (10.0+12+8+10)/4, p.VWAP().At(0, 0), 1e-12)
	assert.InDelta(t, (10.0+14+10+12)/4, p.VWAP().At(1, 0), 1e-12)

	// First return has no predecessor; the fill pass turns it into 0.
	assert.Equal(t, 0.0, p.Returns().At(0, 0))
	assert.InDelta(t, 0.2, p.Returns().At(1, 0), 1e-12)
}

func TestBuildDuplicatePolicy(t *testing.T) {
	first := obs(day(0), "AAA", 1, 1, 1, 100, 10)
	second := obs(day(0), "AAA", 1, 1, 1, 200, 10)

	p, err := Build([]Row{first, second})
	require.NoError(t, err)
	assert.Equal(t, 1, p.DuplicatesDropped)
	assert.Equal(t, 100.0, p.Close().At(0, 0))

	p, err = Build([]Row{first, second}, WithConflictPolicy(KeepLast))
	require.NoError(t, err)
	assert.Equal(t, 1, p.DuplicatesDropped)
	assert.Equal(t, 200.0, p.Close().At(0, 0))
}

func TestBuildZeroFillsMissingCells(t *testing.T) {
	rows := []Row{
		obs(day(0), "AAA", 10, 12, 9, 11, 100),
		obs(day(0), "BBB", 20, 22, 19, 21, 200),
		obs(day(1), "AAA", 11, 13, 10, 12, 110),
		// BBB missing on day 1
	}
	p, err := Build(rows)
	require.NoError(t, err)

	j, _ := p.Axes().Col("BBB")
	assert.Equal(t, 0.0, p.Close().At(1, j))
	assert.Equal(t, 0.0, p.Volume().At(1, j))
}

func TestBuildBenchmarkIsEqualWeightMean(t *testing.T) {
	rows := []Row{
		obs(day(0), "AAA", 10, 10, 10, 10, 1),
		obs(day(0), "BBB", 30, 30, 30, 30, 1),
	}
	p, err := Build(rows)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		assert.InDelta(t, 20.0, p.BenchmarkClose().At(0, j), 1e-12)
		assert.InDelta(t, 20.0, p.BenchmarkOpen().At(0, j), 1e-12)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(nil)
	assert.Error(t, err)

	_, err = Build([]Row{{
		Date: day(0), Symbol: "AAA",
		Fields: map[string]float64{FieldClose: 1},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required field")
}

func TestMatrixCloneIndependent(t *testing.T) {
	axes := NewAxes([]time.Time{day(0)}, []string{"AAA"})
	m := NewMatrix(axes)
	m.Set(0, 0, 1)

	c := m.Clone()
	c.Set(0, 0, 2)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 2.0, c.At(0, 0))
}

func TestNewMatrixStartsMissing(t *testing.T) {
	axes := NewAxes([]time.Time{day(0), day(1)}, []string{"AAA", "BBB"})
	m := NewMatrix(axes)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			assert.True(t, math.IsNaN(m.At(i, j)))
		}
	}
}
