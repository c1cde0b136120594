// Package backtest runs a long-only top-N factor portfolio: each date,
// hold the N highest-scoring symbols equal-weighted into the next day's
// close-to-close return.
package backtest

import (
	"fmt"
	"math"
	"sort"
	"time"

	"alphapanel/internal/panel"
)

// Config sizes the portfolio.
type Config struct {
	TopN          int
	TradingDays   int // periods per year for annualization, 0 means 252
	SkipFirstDays int // warmup rows to ignore, typically the factor's longest window
}

// Result is the portfolio track record.
type Result struct {
	Dates            []time.Time
	DailyReturns     []float64
	CumulativeReturn float64
	Sharpe           float64
	HitRate          float64
}

// Run backtests a factor matrix against the panel's closes. Dates with
// fewer than TopN valid factor values are skipped.
func Run(factor, close *panel.Matrix, cfg Config) (*Result, error) {
	if cfg.TopN <= 0 {
		return nil, fmt.Errorf("backtest: top-n must be positive, got %d", cfg.TopN)
	}
	if !factor.SameShape(close) {
		return nil, fmt.Errorf("backtest: factor shape %dx%d does not match closes %dx%d",
			factor.Rows(), factor.Cols(), close.Rows(), close.Cols())
	}
	days := cfg.TradingDays
	if days <= 0 {
		days = 252
	}

	res := &Result{}
	for i := cfg.SkipFirstDays; i+1 < factor.Rows(); i++ {
		picks := topN(factor, i, cfg.TopN)
		if len(picks) < cfg.TopN {
			continue
		}
		sum, n := 0.0, 0
		for _, j := range picks {
			cur := close.At(i, j)
			next := close.At(i+1, j)
			if math.IsNaN(cur) || math.IsNaN(next) || cur == 0 {
				continue
			}
			sum += next/cur - 1
			n++
		}
		if n == 0 {
			continue
		}
		res.Dates = append(res.Dates, factor.Axes().Date(i))
		res.DailyReturns = append(res.DailyReturns, sum/float64(n))
	}

	res.finalize(days)
	return res, nil
}

func (r *Result) finalize(tradingDays int) {
	n := len(r.DailyReturns)
	if n == 0 {
		return
	}
	growth := 1.0
	sum := 0.0
	hits := 0
	for _, ret := range r.DailyReturns {
		growth *= 1 + ret
		sum += ret
		if ret > 0 {
			hits++
		}
	}
	r.CumulativeReturn = growth - 1
	r.HitRate = float64(hits) / float64(n)

	if n > 1 {
		mean := sum / float64(n)
		ss := 0.0
		for _, ret := range r.DailyReturns {
			d := ret - mean
			ss += d * d
		}
		std := math.Sqrt(ss / float64(n-1))
		if std > 0 {
			r.Sharpe = mean / std * math.Sqrt(float64(tradingDays))
		}
	}
}

// topN returns the column indices of the n largest valid cells in row i.
func topN(m *panel.Matrix, i, n int) []int {
	type cell struct {
		j int
		v float64
	}
	var cells []cell
	for j := 0; j < m.Cols(); j++ {
		v := m.At(i, j)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		cells = append(cells, cell{j, v})
	}
	if len(cells) < n {
		return nil
	}
	sort.Slice(cells, func(a, b int) bool { return cells[a].v > cells[b].v })
	out := make([]int, n)
	for k := 0; k < n; k++ {
		out[k] = cells[k].j
	}
	sort.Ints(out)
	return out
}
