package ops

import (
	"math"

	"alphapanel/internal/panel"
)

func binary(op string, a, b *panel.Matrix, f func(x, y float64) float64) *panel.Matrix {
	checkShapes(op, a, b)
	out := panel.NewMatrix(a.Axes())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			out.Set(i, j, f(a.At(i, j), b.At(i, j)))
		}
	}
	return out
}

func unary(a *panel.Matrix, f func(x float64) float64) *panel.Matrix {
	out := panel.NewMatrix(a.Axes())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			out.Set(i, j, f(a.At(i, j)))
		}
	}
	return out
}

// Add is elementwise a + b.
func Add(a, b *panel.Matrix) *panel.Matrix {
	return binary("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub is elementwise a - b.
func Sub(a, b *panel.Matrix) *panel.Matrix {
	return binary("Sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul is elementwise a * b.
func Mul(a, b *panel.Matrix) *panel.Matrix {
	return binary("Mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div is elementwise a / b. A zero or missing divisor yields a missing
// cell rather than an infinity.
func Div(a, b *panel.Matrix) *panel.Matrix {
	return binary("Div", a, b, func(x, y float64) float64 {
		if y == 0 || math.IsNaN(y) {
			return math.NaN()
		}
		return x / y
	})
}

// AddS is elementwise a + s.
func AddS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return x + s })
}

// SubS is elementwise a - s.
func SubS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return x - s })
}

// SubSM is elementwise s - a.
func SubSM(s float64, a *panel.Matrix) *panel.Matrix {
	return unary(a, func(x float64) float64 { return s - x })
}

// MulS is elementwise a * s.
func MulS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return x * s })
}

// DivS is elementwise a / s; a zero scalar divisor yields a missing matrix.
func DivS(a *panel.Matrix, s float64) *panel.Matrix {
	if s == 0 || math.IsNaN(s) {
		return panel.NewMatrix(a.Axes())
	}
	return unary(a, func(x float64) float64 { return x / s })
}

// DivSM is elementwise s / a, with the Div zero-divisor rule.
func DivSM(s float64, a *panel.Matrix) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		if x == 0 || math.IsNaN(x) {
			return math.NaN()
		}
		return s / x
	})
}

// Neg is elementwise -a.
func Neg(a *panel.Matrix) *panel.Matrix {
	return unary(a, func(x float64) float64 { return -x })
}

// Abs is elementwise |a|.
func Abs(a *panel.Matrix) *panel.Matrix {
	return unary(a, math.Abs)
}

// Sign is elementwise -1, 0, or +1; missing stays missing.
func Sign(a *panel.Matrix) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		switch {
		case math.IsNaN(x):
			return math.NaN()
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// Log is the elementwise natural logarithm; non-positive cells become
// missing.
func Log(a *panel.Matrix) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		if x <= 0 {
			return math.NaN()
		}
		return math.Log(x)
	})
}

// Pow is elementwise a^s.
func Pow(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return math.Pow(x, s) })
}

// PowM is elementwise a^b.
func PowM(a, b *panel.Matrix) *panel.Matrix {
	return binary("PowM", a, b, math.Pow)
}

// SignedPower is sign(a) * |a|^s.
func SignedPower(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		if math.IsNaN(x) {
			return math.NaN()
		}
		p := math.Pow(math.Abs(x), s)
		if x < 0 {
			return -p
		}
		return p
	})
}

// MaxS is the elementwise maximum of a matrix and a scalar.
func MaxS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return math.Max(x, s) })
}

// MinS is the elementwise minimum of a matrix and a scalar.
func MinS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return math.Min(x, s) })
}

// ReplaceZero substitutes v for cells that are exactly zero. Formulas use
// it as an epsilon guard before dividing by a price range.
func ReplaceZero(a *panel.Matrix, v float64) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		if x == 0 {
			return v
		}
		return x
	})
}

// Min2 is the elementwise minimum of two matrices.
func Min2(a, b *panel.Matrix) *panel.Matrix {
	return binary("Min2", a, b, math.Min)
}

// Max2 is the elementwise maximum of two matrices.
func Max2(a, b *panel.Matrix) *panel.Matrix {
	return binary("Max2", a, b, math.Max)
}

func cond(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

// Comparisons produce condition matrices: 1 where the relation holds, 0
// otherwise. Comparisons involving a missing cell are false.

func Gt(a, b *panel.Matrix) *panel.Matrix {
	return binary("Gt", a, b, func(x, y float64) float64 { return cond(x > y) })
}

func Ge(a, b *panel.Matrix) *panel.Matrix {
	return binary("Ge", a, b, func(x, y float64) float64 { return cond(x >= y) })
}

func Lt(a, b *panel.Matrix) *panel.Matrix {
	return binary("Lt", a, b, func(x, y float64) float64 { return cond(x < y) })
}

func Le(a, b *panel.Matrix) *panel.Matrix {
	return binary("Le", a, b, func(x, y float64) float64 { return cond(x <= y) })
}

func Eq(a, b *panel.Matrix) *panel.Matrix {
	return binary("Eq", a, b, func(x, y float64) float64 { return cond(x == y) })
}

func GtS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return cond(x > s) })
}

func GeS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return cond(x >= s) })
}

func LtS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return cond(x < s) })
}

func LeS(a *panel.Matrix, s float64) *panel.Matrix {
	return unary(a, func(x float64) float64 { return cond(x <= s) })
}

// And is the elementwise conjunction of two condition matrices.
func And(a, b *panel.Matrix) *panel.Matrix {
	return binary("And", a, b, func(x, y float64) float64 {
		return cond(x != 0 && !math.IsNaN(x) && y != 0 && !math.IsNaN(y))
	})
}

// Or is the elementwise disjunction of two condition matrices.
func Or(a, b *panel.Matrix) *panel.Matrix {
	return binary("Or", a, b, func(x, y float64) float64 {
		return cond((x != 0 && !math.IsNaN(x)) || (y != 0 && !math.IsNaN(y)))
	})
}

// Not inverts a condition matrix.
func Not(a *panel.Matrix) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		return cond(x == 0 || math.IsNaN(x))
	})
}

// Where selects a where the condition is true and b elsewhere. A missing
// condition cell selects b.
func Where(c, a, b *panel.Matrix) *panel.Matrix {
	checkShapes("Where", c, a)
	checkShapes("Where", c, b)
	out := panel.NewMatrix(c.Axes())
	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < c.Cols(); j++ {
			v := c.At(i, j)
			if v != 0 && !math.IsNaN(v) {
				out.Set(i, j, a.At(i, j))
			} else {
				out.Set(i, j, b.At(i, j))
			}
		}
	}
	return out
}

// WhereS selects between scalar branches on the condition matrix.
func WhereS(c *panel.Matrix, a, b float64) *panel.Matrix {
	return unary(c, func(v float64) float64 {
		if v != 0 && !math.IsNaN(v) {
			return a
		}
		return b
	})
}

// Fill replaces missing cells with v.
func Fill(a *panel.Matrix, v float64) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		if math.IsNaN(x) {
			return v
		}
		return x
	})
}

// Sanitize replaces missing and infinite cells with 0.
func Sanitize(a *panel.Matrix) *panel.Matrix {
	return unary(a, func(x float64) float64 {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	})
}
