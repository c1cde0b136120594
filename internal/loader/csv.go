// Package loader reads long-format market data CSVs into panel rows.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"alphapanel/internal/panel"
)

const dateLayout = "2006-01-02"

// ReadFile loads a CSV file. The header must contain date and symbol
// columns; every other column becomes a panel field.
func ReadFile(path string) ([]panel.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return rows, nil
}

// Read parses long-format records: one row per (date, symbol) with
// numeric field columns. Empty field cells are skipped, so they enter
// the panel as missing.
func Read(r io.Reader) ([]panel.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	dateCol, symbolCol := -1, -1
	fieldCols := map[int]string{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "date":
			dateCol = i
		case "symbol":
			symbolCol = i
		default:
			fieldCols[i] = name
		}
	}
	if dateCol < 0 || symbolCol < 0 {
		return nil, fmt.Errorf("header must contain date and symbol columns, got %v", header)
	}

	var rows []panel.Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		date, err := time.Parse(dateLayout, rec[dateCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q: %w", line, rec[dateCol], err)
		}
		row := panel.Row{
			Date:   date,
			Symbol: strings.TrimSpace(rec[symbolCol]),
			Fields: make(map[string]float64, len(fieldCols)),
		}
		if row.Symbol == "" {
			return nil, fmt.Errorf("line %d: empty symbol", line)
		}
		for col, name := range fieldCols {
			cell := strings.TrimSpace(rec[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad %s value %q: %w", line, name, cell, err)
			}
			row.Fields[name] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return rows, nil
}
