// Package analysis measures factor predictive power: per-date information
// coefficients against forward returns, summarized into IR-style stats.
package analysis

import (
	"fmt"
	"math"
	"time"

	"alphapanel/internal/panel"
)

// Point is one date's information coefficient.
type Point struct {
	Date time.Time
	IC   float64
}

// Series is the dated IC sequence for one factor.
type Series struct {
	Points []Point
}

// Stats summarizes an IC series.
type Stats struct {
	Mean    float64
	Std     float64
	IR      float64
	HitRate float64
	N       int
}

// ForwardReturns builds the horizon-period forward return matrix from
// closes: close[t+horizon]/close[t] - 1. The trailing horizon rows are
// missing.
func ForwardReturns(close *panel.Matrix, horizon int) (*panel.Matrix, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("analysis: horizon must be positive, got %d", horizon)
	}
	out := panel.NewMatrix(close.Axes())
	for j := 0; j < close.Cols(); j++ {
		for i := 0; i+horizon < close.Rows(); i++ {
			cur := close.At(i, j)
			fut := close.At(i+horizon, j)
			if math.IsNaN(cur) || math.IsNaN(fut) || cur == 0 {
				continue
			}
			out.Set(i, j, fut/cur-1)
		}
	}
	return out, nil
}

// IC computes the per-date Pearson correlation between a factor matrix
// and a forward-return matrix. Dates with fewer than three jointly valid
// cells are skipped.
func IC(factor, fwd *panel.Matrix) (*Series, error) {
	if !factor.SameShape(fwd) {
		return nil, fmt.Errorf("analysis: factor shape %dx%d does not match returns %dx%d",
			factor.Rows(), factor.Cols(), fwd.Rows(), fwd.Cols())
	}
	s := &Series{}
	for i := 0; i < factor.Rows(); i++ {
		ic, ok := rowPearson(factor, fwd, i)
		if !ok {
			continue
		}
		s.Points = append(s.Points, Point{Date: factor.Axes().Date(i), IC: ic})
	}
	return s, nil
}

// Summarize reduces a series to its headline stats. IR is mean over
// sample std; hit rate is the share of positive ICs.
func (s *Series) Summarize() Stats {
	n := len(s.Points)
	if n == 0 {
		return Stats{}
	}
	sum := 0.0
	hits := 0
	for _, pt := range s.Points {
		sum += pt.IC
		if pt.IC > 0 {
			hits++
		}
	}
	mean := sum / float64(n)

	st := Stats{Mean: mean, HitRate: float64(hits) / float64(n), N: n}
	if n > 1 {
		ss := 0.0
		for _, pt := range s.Points {
			d := pt.IC - mean
			ss += d * d
		}
		st.Std = math.Sqrt(ss / float64(n-1))
		if st.Std > 0 {
			st.IR = mean / st.Std
		}
	}
	return st
}

func rowPearson(a, b *panel.Matrix, i int) (float64, bool) {
	var xs, ys []float64
	for j := 0; j < a.Cols(); j++ {
		x := a.At(i, j)
		y := b.At(i, j)
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	n := len(xs)
	if n < 3 {
		return 0, false
	}
	mx, my := 0.0, 0.0
	for k := range xs {
		mx += xs[k]
		my += ys[k]
	}
	mx /= float64(n)
	my /= float64(n)
	var cov, vx, vy float64
	for k := range xs {
		dx := xs[k] - mx
		dy := ys[k] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0, false
	}
	return cov / math.Sqrt(vx*vy), true
}
