// Package export writes evaluated factors to Excel workbooks and
// long-format CSV.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"alphapanel/internal/alpha"
	"alphapanel/internal/panel"
)

const dateLayout = "2006-01-02"

// WriteWorkbook writes a Summary sheet plus one sheet per factor, dates
// down the rows and symbols across the columns. Missing cells stay empty.
func WriteWorkbook(path string, results map[alpha.FactorID]*panel.Matrix) error {
	if len(results) == 0 {
		return fmt.Errorf("export: no results to write")
	}
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)
	for col, h := range []string{"factor", "dates", "symbols", "coverage"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(summary, cell, h); err != nil {
			return fmt.Errorf("export: summary header: %w", err)
		}
	}

	for row, id := range sortedIDs(results) {
		m := results[id]
		if err := writeSummaryRow(f, summary, row+2, id, m); err != nil {
			return err
		}
		if err := writeFactorSheet(f, string(id), m); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func writeSummaryRow(f *excelize.File, sheet string, row int, id alpha.FactorID, m *panel.Matrix) error {
	valid := 0
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v := m.At(i, j); !math.IsNaN(v) && !math.IsInf(v, 0) {
				valid++
			}
		}
	}
	coverage := 0.0
	if total := m.Rows() * m.Cols(); total > 0 {
		coverage = float64(valid) / float64(total)
	}
	for col, v := range []interface{}{string(id), m.Rows(), m.Cols(), coverage} {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("export: summary row %s: %w", id, err)
		}
	}
	return nil
}

func writeFactorSheet(f *excelize.File, name string, m *panel.Matrix) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("export: sheet %s: %w", name, err)
	}
	axes := m.Axes()
	for j := 0; j < m.Cols(); j++ {
		cell, _ := excelize.CoordinatesToCellName(j+2, 1)
		if err := f.SetCellValue(name, cell, axes.Symbol(j)); err != nil {
			return fmt.Errorf("export: sheet %s header: %w", name, err)
		}
	}
	for i := 0; i < m.Rows(); i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue(name, cell, axes.Date(i).Format(dateLayout)); err != nil {
			return fmt.Errorf("export: sheet %s dates: %w", name, err)
		}
		for j := 0; j < m.Cols(); j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+2, i+2)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("export: sheet %s cell: %w", name, err)
			}
		}
	}
	return nil
}

func sortedIDs(results map[alpha.FactorID]*panel.Matrix) []alpha.FactorID {
	ids := make([]alpha.FactorID, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}
