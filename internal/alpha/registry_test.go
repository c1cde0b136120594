package alpha

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphapanel/internal/panel"
)

func testPanel(t *testing.T, days int) *panel.Panel {
	t.Helper()
	symbols := []string{"AAA", "BBB", "CCC"}
	var rows []panel.Row
	for d := 0; d < days; d++ {
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		for s, sym := range symbols {
			base := 100 + 10*float64(s) + float64(d)*float64(s+1)*0.5
			wiggle := 2 * math.Sin(float64(d)*0.7+float64(s))
			c := base + wiggle
			rows = append(rows, panel.Row{
				Date:   date,
				Symbol: sym,
				Fields: map[string]float64{
					panel.FieldOpen:   c - 0.5,
					panel.FieldHigh:   c + 1.5,
					panel.FieldLow:    c - 1.5,
					panel.FieldClose:  c,
					panel.FieldVolume: 1000 + 50*float64(d%7) + 100*float64(s),
				},
			})
		}
	}
	p, err := panel.Build(rows)
	require.NoError(t, err)
	return p
}

func TestRegistryIsComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 191)

	seen := map[FactorID]bool{}
	for n := 1; n <= 191; n++ {
		id := FactorID(fmt.Sprintf("alpha%03d", n))
		f, err := Lookup(id)
		require.NoError(t, err, "missing %s", id)
		assert.Equal(t, id, f.ID)
		assert.NotNil(t, f.Fn)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("alpha999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown factor")
}

func TestIDsSorted(t *testing.T) {
	ids := IDs()
	require.Len(t, ids, 191)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	assert.Equal(t, Alpha001, ids[0])
	assert.Equal(t, Alpha191, ids[190])
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = Factor{}
	b := All()
	assert.Equal(t, Alpha001, b[0].ID)
}

func TestFactorsShareInputAxes(t *testing.T) {
	p := testPanel(t, 40)
	for _, id := range []FactorID{Alpha001, Alpha027, Alpha053, Alpha101, Alpha106, Alpha172, Alpha191} {
		f, err := Lookup(id)
		require.NoError(t, err)
		m := f.Fn(p)
		require.NotNil(t, m, "%s returned nil", id)
		assert.Same(t, p.Axes(), m.Axes(), "%s axes", id)
	}
}

func TestMomentumFactorTracksPriceDirection(t *testing.T) {
	symbols := []string{"UP", "DOWN"}
	var rows []panel.Row
	for d := 0; d < 30; d++ {
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		closes := []float64{100 + float64(d), 100 - float64(d)}
		for s, sym := range symbols {
			c := closes[s]
			rows = append(rows, panel.Row{
				Date:   date,
				Symbol: sym,
				Fields: map[string]float64{
					panel.FieldOpen: c, panel.FieldHigh: c + 1,
					panel.FieldLow: c - 1, panel.FieldClose: c,
					panel.FieldVolume: 1000,
				},
			})
		}
	}
	p, err := panel.Build(rows)
	require.NoError(t, err)

	// alpha106 is close minus its 1-day lag: positive for the riser,
	// negative for the faller.
	f, err := Lookup(Alpha106)
	require.NoError(t, err)
	m := f.Fn(p)

	last := m.Rows() - 1
	up, _ := p.Axes().Col("UP")
	down, _ := p.Axes().Col("DOWN")
	assert.Greater(t, m.At(last, up), 0.0)
	assert.Less(t, m.At(last, down), 0.0)
}
