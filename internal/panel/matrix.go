package panel

import (
	"math"
	"time"
)

// Axes is the shared (dates x symbols) index pair for one computation.
// It is built once per panel and every matrix derived from that panel
// points at the same Axes, so shape agreement is a pointer comparison.
type Axes struct {
	dates   []time.Time
	symbols []string
	col     map[string]int
}

// NewAxes builds the axis pair. Dates must already be ascending and unique;
// symbol order is preserved as given.
func NewAxes(dates []time.Time, symbols []string) *Axes {
	col := make(map[string]int, len(symbols))
	for i, s := range symbols {
		col[s] = i
	}
	return &Axes{dates: dates, symbols: symbols, col: col}
}

func (a *Axes) NumDates() int   { return len(a.dates) }
func (a *Axes) NumSymbols() int { return len(a.symbols) }

// Date returns the date for row i.
func (a *Axes) Date(i int) time.Time { return a.dates[i] }

// Symbol returns the symbol for column j.
func (a *Axes) Symbol(j int) string { return a.symbols[j] }

// Col returns the column index for a symbol.
func (a *Axes) Col(symbol string) (int, bool) {
	j, ok := a.col[symbol]
	return j, ok
}

// Dates returns a copy of the date axis.
func (a *Axes) Dates() []time.Time {
	out := make([]time.Time, len(a.dates))
	copy(out, a.dates)
	return out
}

// Symbols returns a copy of the symbol axis.
func (a *Axes) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Matrix is a dates x symbols grid of float64 backed by one contiguous
// row-major buffer. NaN marks a missing cell. Matrices are never mutated
// by operators; every operator allocates its result.
type Matrix struct {
	axes *Axes
	rows int
	cols int
	data []float64
}

// NewMatrix allocates an all-missing matrix on the given axes.
func NewMatrix(axes *Axes) *Matrix {
	m := &Matrix{
		axes: axes,
		rows: axes.NumDates(),
		cols: axes.NumSymbols(),
	}
	m.data = make([]float64, m.rows*m.cols)
	for i := range m.data {
		m.data[i] = math.NaN()
	}
	return m
}

// Const allocates a matrix with every cell set to v.
func Const(axes *Axes, v float64) *Matrix {
	m := NewMatrix(axes)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

func (m *Matrix) Axes() *Axes { return m.axes }
func (m *Matrix) Rows() int   { return m.rows }
func (m *Matrix) Cols() int   { return m.cols }

// At returns the cell at (date row i, symbol column j).
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set writes the cell at (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy sharing the same axes.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{axes: m.axes, rows: m.rows, cols: m.cols}
	out.data = make([]float64, len(m.data))
	copy(out.data, m.data)
	return out
}

// SameShape reports whether two matrices share one axis pair.
func (m *Matrix) SameShape(o *Matrix) bool {
	return m.axes == o.axes || (m.rows == o.rows && m.cols == o.cols)
}

// Row copies date row i into a fresh slice.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Column copies symbol column j into a fresh slice.
func (m *Matrix) Column(j int) []float64 {
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}
