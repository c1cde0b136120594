package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"alphapanel/internal/alpha"
	"alphapanel/internal/panel"
)

// WriteCSV writes results long-format: factor,date,symbol,value. Missing
// cells are written with an empty value column.
func WriteCSV(w io.Writer, results map[alpha.FactorID]*panel.Matrix) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"factor", "date", "symbol", "value"}); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}
	for _, id := range sortedIDs(results) {
		m := results[id]
		axes := m.Axes()
		for i := 0; i < m.Rows(); i++ {
			date := axes.Date(i).Format(dateLayout)
			for j := 0; j < m.Cols(); j++ {
				val := ""
				if v := m.At(i, j); !math.IsNaN(v) && !math.IsInf(v, 0) {
					val = strconv.FormatFloat(v, 'g', -1, 64)
				}
				if err := cw.Write([]string{string(id), date, axes.Symbol(j), val}); err != nil {
					return fmt.Errorf("export: csv row: %w", err)
				}
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: csv flush: %w", err)
	}
	return nil
}
