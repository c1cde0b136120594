package ops

import (
	"math"

	"alphapanel/internal/panel"
)

// rolling applies f to every full trailing window of w rows, per column.
// Rows with fewer than w predecessors, or with any missing value inside the
// window, yield NaN.
func rolling(op string, x *panel.Matrix, w int, f func(win []float64) float64) *panel.Matrix {
	checkWindow(op, w)
	out := panel.NewMatrix(x.Axes())
	win := make([]float64, w)
	for j := 0; j < x.Cols(); j++ {
		for i := w - 1; i < x.Rows(); i++ {
			valid := true
			for k := 0; k < w; k++ {
				v := x.At(i-w+1+k, j)
				if math.IsNaN(v) {
					valid = false
					break
				}
				win[k] = v
			}
			if valid {
				out.Set(i, j, f(win))
			}
		}
	}
	return out
}

// TSSum is the rolling sum over the trailing w rows.
func TSSum(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("TSSum", x, w, func(win []float64) float64 {
		s := 0.0
		for _, v := range win {
			s += v
		}
		return s
	})
}

// Mean is the simple moving average over the trailing w rows.
func Mean(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("Mean", x, w, func(win []float64) float64 {
		s := 0.0
		for _, v := range win {
			s += v
		}
		return s / float64(len(win))
	})
}

// StdDev is the rolling sample standard deviation over w rows.
func StdDev(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("StdDev", x, w, func(win []float64) float64 {
		n := len(win)
		if n < 2 {
			return math.NaN()
		}
		mean := 0.0
		for _, v := range win {
			mean += v
		}
		mean /= float64(n)
		ss := 0.0
		for _, v := range win {
			d := v - mean
			ss += d * d
		}
		return math.Sqrt(ss / float64(n-1))
	})
}

// TSMin is the rolling minimum over w rows.
func TSMin(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("TSMin", x, w, func(win []float64) float64 {
		m := win[0]
		for _, v := range win[1:] {
			if v < m {
				m = v
			}
		}
		return m
	})
}

// TSMax is the rolling maximum over w rows.
func TSMax(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("TSMax", x, w, func(win []float64) float64 {
		m := win[0]
		for _, v := range win[1:] {
			if v > m {
				m = v
			}
		}
		return m
	})
}

// TSRank ranks the newest value within its trailing w-row window, 1-based,
// ties resolved to the smallest shared rank.
func TSRank(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("TSRank", x, w, func(win []float64) float64 {
		last := win[len(win)-1]
		r := 1
		for _, v := range win {
			if v < last {
				r++
			}
		}
		return float64(r)
	})
}

// TSArgMax is the 1-based offset, from the window start, of the first
// occurrence of the window maximum.
func TSArgMax(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("TSArgMax", x, w, func(win []float64) float64 {
		best := 0
		for k, v := range win {
			if v > win[best] {
				best = k
			}
		}
		return float64(best + 1)
	})
}

// TSArgMin is the 1-based offset, from the window start, of the first
// occurrence of the window minimum.
func TSArgMin(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("TSArgMin", x, w, func(win []float64) float64 {
		best := 0
		for k, v := range win {
			if v < win[best] {
				best = k
			}
		}
		return float64(best + 1)
	})
}

// HighDay counts rows back from the window end to the maximum: 1 when the
// newest row holds the maximum, w when the oldest does.
func HighDay(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("HighDay", x, w, func(win []float64) float64 {
		best := 0
		for k, v := range win {
			if v > win[best] {
				best = k
			}
		}
		return float64(len(win) - best)
	})
}

// LowDay counts rows back from the window end to the minimum.
func LowDay(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("LowDay", x, w, func(win []float64) float64 {
		best := 0
		for k, v := range win {
			if v < win[best] {
				best = k
			}
		}
		return float64(len(win) - best)
	})
}

// Product is the rolling product over w rows.
func Product(x *panel.Matrix, w int) *panel.Matrix {
	return rolling("Product", x, w, func(win []float64) float64 {
		p := 1.0
		for _, v := range win {
			p *= v
		}
		return p
	})
}

// DecayLinear is the rolling weighted average with weights 1..w, newest row
// weighted heaviest, weights normalized to sum to 1.
func DecayLinear(x *panel.Matrix, w int) *panel.Matrix {
	checkWindow("DecayLinear", w)
	total := float64(w*(w+1)) / 2
	return rolling("DecayLinear", x, w, func(win []float64) float64 {
		s := 0.0
		for k, v := range win {
			s += v * float64(k+1) / total
		}
		return s
	})
}

// Count is the rolling count of true cells in a condition matrix over w
// rows. Condition matrices encode true as 1 and false as 0.
func Count(cond *panel.Matrix, w int) *panel.Matrix {
	return rolling("Count", cond, w, func(win []float64) float64 {
		n := 0.0
		for _, v := range win {
			if v != 0 {
				n++
			}
		}
		return n
	})
}

// Delta is x[t] - x[t-k].
func Delta(x *panel.Matrix, k int) *panel.Matrix {
	checkLag("Delta", k)
	out := panel.NewMatrix(x.Axes())
	for j := 0; j < x.Cols(); j++ {
		for i := k; i < x.Rows(); i++ {
			out.Set(i, j, x.At(i, j)-x.At(i-k, j))
		}
	}
	return out
}

// Delay is x[t-k].
func Delay(x *panel.Matrix, k int) *panel.Matrix {
	checkLag("Delay", k)
	out := panel.NewMatrix(x.Axes())
	for j := 0; j < x.Cols(); j++ {
		for i := k; i < x.Rows(); i++ {
			out.Set(i, j, x.At(i-k, j))
		}
	}
	return out
}

// EMA is the exponentially-weighted moving average with smoothing factor
// m/n, seeded from the first valid value per column. A missing input cell
// carries the previous smoothed value forward.
//
// This is the two-argument form of the historical overloaded rolling mean;
// the plain one-argument form is Mean.
func EMA(x *panel.Matrix, n, m int) *panel.Matrix {
	checkWindow("EMA", n)
	if m <= 0 || m > n {
		structural("EMA", "smoothing must satisfy 0 < m <= n, got m=%d n=%d", m, n)
	}
	alpha := float64(m) / float64(n)
	out := panel.NewMatrix(x.Axes())
	for j := 0; j < x.Cols(); j++ {
		state := math.NaN()
		for i := 0; i < x.Rows(); i++ {
			v := x.At(i, j)
			switch {
			case math.IsNaN(state) && math.IsNaN(v):
				// still warming up
			case math.IsNaN(state):
				state = v
			case math.IsNaN(v):
				// carry state
			default:
				state = alpha*v + (1-alpha)*state
			}
			out.Set(i, j, state)
		}
	}
	return out
}

// CumSum is the running per-column cumulative sum; missing cells stay
// missing and do not contribute.
func CumSum(x *panel.Matrix) *panel.Matrix {
	out := panel.NewMatrix(x.Axes())
	for j := 0; j < x.Cols(); j++ {
		s := 0.0
		for i := 0; i < x.Rows(); i++ {
			v := x.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			s += v
			out.Set(i, j, s)
		}
	}
	return out
}

// rollingPair applies f to paired full windows of two matrices.
func rollingPair(op string, x, y *panel.Matrix, w int, f func(wx, wy []float64) float64) *panel.Matrix {
	checkWindow(op, w)
	checkShapes(op, x, y)
	out := panel.NewMatrix(x.Axes())
	wx := make([]float64, w)
	wy := make([]float64, w)
	for j := 0; j < x.Cols(); j++ {
		for i := w - 1; i < x.Rows(); i++ {
			valid := true
			for k := 0; k < w; k++ {
				a := x.At(i-w+1+k, j)
				b := y.At(i-w+1+k, j)
				if math.IsNaN(a) || math.IsNaN(b) {
					valid = false
					break
				}
				wx[k] = a
				wy[k] = b
			}
			if valid {
				out.Set(i, j, f(wx, wy))
			}
		}
	}
	return out
}

// Correlation is the rolling Pearson correlation between two matrices over
// w rows, per column. Undefined results (zero variance, missing windows)
// are coerced to 0 inside the primitive, so every cell the input covers is
// densely defined.
func Correlation(x, y *panel.Matrix, w int) *panel.Matrix {
	out := rollingPair("Correlation", x, y, w, pearson)
	coerceToZero(out)
	return out
}

// Covariance is the rolling sample covariance between two matrices over w
// rows, per column, with the same dense coercion as Correlation.
func Covariance(x, y *panel.Matrix, w int) *panel.Matrix {
	out := rollingPair("Covariance", x, y, w, func(wx, wy []float64) float64 {
		return sampleCov(wx, wy)
	})
	coerceToZero(out)
	return out
}

func pearson(wx, wy []float64) float64 {
	cov := sampleCov(wx, wy)
	sx := sampleStd(wx)
	sy := sampleStd(wy)
	return cov / (sx * sy)
}

func sampleCov(wx, wy []float64) float64 {
	n := len(wx)
	if n < 2 {
		return math.NaN()
	}
	mx, my := 0.0, 0.0
	for k := range wx {
		mx += wx[k]
		my += wy[k]
	}
	mx /= float64(n)
	my /= float64(n)
	s := 0.0
	for k := range wx {
		s += (wx[k] - mx) * (wy[k] - my)
	}
	return s / float64(n-1)
}

func sampleStd(win []float64) float64 {
	n := len(win)
	if n < 2 {
		return math.NaN()
	}
	mean := 0.0
	for _, v := range win {
		mean += v
	}
	mean /= float64(n)
	ss := 0.0
	for _, v := range win {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

func coerceToZero(m *panel.Matrix) {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				m.Set(i, j, 0)
			}
		}
	}
}
