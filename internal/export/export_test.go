package export

import (
	"bytes"
	"encoding/csv"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"alphapanel/internal/alpha"
	"alphapanel/internal/panel"
)

func sampleResults(t *testing.T) map[alpha.FactorID]*panel.Matrix {
	t.Helper()
	axes := panel.NewAxes(
		[]time.Time{
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		[]string{"AAA", "BBB"},
	)
	m := panel.NewMatrix(axes)
	m.Set(0, 0, 1.5)
	m.Set(0, 1, -2)
	m.Set(1, 0, 0.25)
	// (1,1) stays missing
	return map[alpha.FactorID]*panel.Matrix{alpha.Alpha001: m}
}

func TestWriteCSVLongFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResults(t)))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 5)

	assert.Equal(t, []string{"factor", "date", "symbol", "value"}, recs[0])
	assert.Equal(t, []string{"alpha001", "2024-01-02", "AAA", "1.5"}, recs[1])
	assert.Equal(t, []string{"alpha001", "2024-01-02", "BBB", "-2"}, recs[2])
	assert.Equal(t, []string{"alpha001", "2024-01-03", "AAA", "0.25"}, recs[3])
	// Missing cell keeps its row with an empty value.
	assert.Equal(t, []string{"alpha001", "2024-01-03", "BBB", ""}, recs[4])
}

func TestWriteWorkbookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleResults(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Summary")
	assert.Contains(t, f.GetSheetList(), "alpha001")

	name, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "alpha001", name)

	sym, err := f.GetCellValue("alpha001", "B1")
	require.NoError(t, err)
	assert.Equal(t, "AAA", sym)

	date, err := f.GetCellValue("alpha001", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", date)

	v, err := f.GetCellValue("alpha001", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1.5", v)

	// The missing cell writes nothing.
	empty, err := f.GetCellValue("alpha001", "C3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWriteWorkbookEmptyResults(t *testing.T) {
	err := WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), nil)
	assert.Error(t, err)
}

func TestCoverageExcludesInvalidCells(t *testing.T) {
	results := sampleResults(t)
	m := results[alpha.Alpha001]
	m.Set(1, 0, math.Inf(1))

	path := filepath.Join(t.TempDir(), "factors.xlsx")
	require.NoError(t, WriteWorkbook(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cov, err := f.GetCellValue("Summary", "D2")
	require.NoError(t, err)
	assert.Equal(t, "0.5", cov)
}
