package panel

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Canonical field names every panel exposes to formulas.
const (
	FieldOpen    = "open"
	FieldHigh    = "high"
	FieldLow     = "low"
	FieldClose   = "close"
	FieldVolume  = "volume"
	FieldVWAP    = "vwap"
	FieldReturns = "returns"

	// Equal-weight market proxies derived at build time.
	FieldBenchmarkOpen  = "benchmark_open"
	FieldBenchmarkClose = "benchmark_close"
)

var requiredFields = []string{FieldOpen, FieldHigh, FieldLow, FieldClose, FieldVolume}

var canonicalFields = []string{
	FieldOpen, FieldHigh, FieldLow, FieldClose, FieldVolume, FieldVWAP, FieldReturns,
}

// Row is one observation of one instrument on one date.
type Row struct {
	Date   time.Time
	Symbol string
	Fields map[string]float64
}

// ConflictPolicy decides which row wins when (date, symbol) repeats.
type ConflictPolicy int

const (
	// KeepFirst drops later duplicates, matching the historical behaviour.
	KeepFirst ConflictPolicy = iota
	// KeepLast prefers the most recently ingested row.
	KeepLast
)

// Panel is the immutable set of wide field matrices for one computation.
type Panel struct {
	axes   *Axes
	fields map[string]*Matrix

	// DuplicatesDropped counts input rows discarded by the conflict policy.
	DuplicatesDropped int
}

type buildConfig struct {
	policy ConflictPolicy
	logger zerolog.Logger
}

// BuildOption customizes panel construction.
type BuildOption func(*buildConfig)

// WithConflictPolicy overrides the duplicate-key policy.
func WithConflictPolicy(p ConflictPolicy) BuildOption {
	return func(c *buildConfig) { c.policy = p }
}

// WithLogger routes build diagnostics to the given logger.
func WithLogger(l zerolog.Logger) BuildOption {
	return func(c *buildConfig) { c.logger = l }
}

// Build reshapes long-format rows into one wide matrix per field.
//
// Duplicate (date, symbol) keys are resolved by the conflict policy and the
// dropped count is surfaced on the panel. vwap and returns are derived when
// absent, then the seven canonical fields are zero-filled. The benchmark
// fields are always derived as per-date equal-weight means.
func Build(rows []Row, opts ...BuildOption) (*Panel, error) {
	cfg := buildConfig{policy: KeepFirst, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("panel: no input rows")
	}

	type key struct {
		date   time.Time
		symbol string
	}
	seen := make(map[key]int, len(rows))
	kept := make([]Row, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		k := key{r.Date, r.Symbol}
		if idx, dup := seen[k]; dup {
			dropped++
			if cfg.policy == KeepLast {
				kept[idx] = r
			}
			continue
		}
		seen[k] = len(kept)
		kept = append(kept, r)
	}
	if dropped > 0 {
		cfg.logger.Warn().
			Int("dropped", dropped).
			Int("kept", len(kept)).
			Msg("duplicate (date, symbol) keys in panel input")
	}

	fieldNames := map[string]bool{}
	dateSet := map[time.Time]bool{}
	var symbols []string
	symbolSeen := map[string]bool{}
	for _, r := range kept {
		dateSet[r.Date] = true
		if !symbolSeen[r.Symbol] {
			symbolSeen[r.Symbol] = true
			symbols = append(symbols, r.Symbol)
		}
		for name := range r.Fields {
			fieldNames[name] = true
		}
	}
	for _, name := range requiredFields {
		if !fieldNames[name] {
			return nil, fmt.Errorf("panel: required field %q absent from input", name)
		}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	axes := NewAxes(dates, symbols)
	rowIdx := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		rowIdx[d] = i
	}

	fields := make(map[string]*Matrix, len(fieldNames)+4)
	for name := range fieldNames {
		fields[name] = NewMatrix(axes)
	}
	for _, r := range kept {
		i := rowIdx[r.Date]
		j, _ := axes.Col(r.Symbol)
		for name, v := range r.Fields {
			fields[name].Set(i, j, v)
		}
	}

	p := &Panel{axes: axes, fields: fields, DuplicatesDropped: dropped}

	if _, ok := fields[FieldVWAP]; !ok {
		p.fields[FieldVWAP] = deriveVWAP(fields[FieldOpen], fields[FieldHigh], fields[FieldLow], fields[FieldClose])
	}
	if _, ok := fields[FieldReturns]; !ok {
		p.fields[FieldReturns] = deriveReturns(fields[FieldClose])
	}

	// Zero-fill pass: formulas see 0, not NaN, in the canonical fields.
	for _, name := range canonicalFields {
		fillZero(p.fields[name])
	}

	p.fields[FieldBenchmarkOpen] = deriveBenchmark(p.fields[FieldOpen])
	p.fields[FieldBenchmarkClose] = deriveBenchmark(p.fields[FieldClose])

	cfg.logger.Debug().
		Int("dates", axes.NumDates()).
		Int("symbols", axes.NumSymbols()).
		Int("fields", len(p.fields)).
		Msg("panel built")

	return p, nil
}

// Axes returns the shared axis pair.
func (p *Panel) Axes() *Axes { return p.axes }

// Field returns the named wide matrix.
func (p *Panel) Field(name string) (*Matrix, error) {
	m, ok := p.fields[name]
	if !ok {
		return nil, fmt.Errorf("panel: unknown field %q", name)
	}
	return m, nil
}

// FieldNames lists the materialized fields in sorted order.
func (p *Panel) FieldNames() []string {
	names := make([]string, 0, len(p.fields))
	for name := range p.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Panel) Open() *Matrix    { return p.fields[FieldOpen] }
func (p *Panel) High() *Matrix    { return p.fields[FieldHigh] }
func (p *Panel) Low() *Matrix     { return p.fields[FieldLow] }
func (p *Panel) Close() *Matrix   { return p.fields[FieldClose] }
func (p *Panel) Volume() *Matrix  { return p.fields[FieldVolume] }
func (p *Panel) VWAP() *Matrix    { return p.fields[FieldVWAP] }
func (p *Panel) Returns() *Matrix { return p.fields[FieldReturns] }

func (p *Panel) BenchmarkOpen() *Matrix  { return p.fields[FieldBenchmarkOpen] }
func (p *Panel) BenchmarkClose() *Matrix { return p.fields[FieldBenchmarkClose] }

// deriveVWAP approximates vwap as the OHLC mean.
func deriveVWAP(open, high, low, close *Matrix) *Matrix {
	out := NewMatrix(open.axes)
	for i := 0; i < out.rows; i++ {
		for j := 0; j < out.cols; j++ {
			out.Set(i, j, (open.At(i, j)+high.At(i, j)+low.At(i, j)+close.At(i, j))/4)
		}
	}
	return out
}

// deriveReturns computes per-column close-to-close percentage change.
// Runs before the zero-fill so a missing close yields a missing return.
func deriveReturns(close *Matrix) *Matrix {
	out := NewMatrix(close.axes)
	for j := 0; j < close.cols; j++ {
		for i := 1; i < close.rows; i++ {
			prev := close.At(i-1, j)
			cur := close.At(i, j)
			if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
				continue
			}
			out.Set(i, j, cur/prev-1)
		}
	}
	return out
}

// deriveBenchmark broadcasts the per-date equal-weight mean to every column.
func deriveBenchmark(m *Matrix) *Matrix {
	out := NewMatrix(m.axes)
	for i := 0; i < m.rows; i++ {
		sum, n := 0.0, 0
		for j := 0; j < m.cols; j++ {
			if v := m.At(i, j); !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 {
			continue
		}
		mean := sum / float64(n)
		for j := 0; j < m.cols; j++ {
			out.Set(i, j, mean)
		}
	}
	return out
}

func fillZero(m *Matrix) {
	for i := range m.data {
		if math.IsNaN(m.data[i]) {
			m.data[i] = 0
		}
	}
}
