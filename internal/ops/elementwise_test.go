package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivZeroDivisorIsMissing(t *testing.T) {
	a := mk(t, [][]float64{{6, 6, 6}})
	b := mk(t, [][]float64{{2, 0, nan}})
	got := Div(a, b)
	assert.Equal(t, 3.0, got.At(0, 0))
	assert.True(t, math.IsNaN(got.At(0, 1)))
	assert.True(t, math.IsNaN(got.At(0, 2)))
}

func TestScalarVariants(t *testing.T) {
	a := mk(t, [][]float64{{2, -4}})

	assertCells(t, []float64{5}, col(AddS(a, 3), 0))
	assertCells(t, []float64{-1}, col(SubS(a, 3), 0))
	assertCells(t, []float64{1}, col(SubSM(3, a), 0))
	assertCells(t, []float64{6}, col(MulS(a, 3), 0))
	assertCells(t, []float64{1}, col(DivS(a, 2), 0))
	assertCells(t, []float64{-2}, col(DivS(a, 2), 1))

	zero := DivS(a, 0)
	assert.True(t, math.IsNaN(zero.At(0, 0)))

	inv := DivSM(8, a)
	assertCells(t, []float64{4}, col(inv, 0))
	assertCells(t, []float64{-2}, col(inv, 1))
}

func TestSignLogAndSignedPower(t *testing.T) {
	a := mk(t, [][]float64{{-3, 0, 2, nan}})
	s := Sign(a)
	assert.Equal(t, -1.0, s.At(0, 0))
	assert.Equal(t, 0.0, s.At(0, 1))
	assert.Equal(t, 1.0, s.At(0, 2))
	assert.True(t, math.IsNaN(s.At(0, 3)))

	l := Log(mk(t, [][]float64{{math.E, 0, -1}}))
	assert.InDelta(t, 1.0, l.At(0, 0), 1e-12)
	assert.True(t, math.IsNaN(l.At(0, 1)))
	assert.True(t, math.IsNaN(l.At(0, 2)))

	sp := SignedPower(mk(t, [][]float64{{-4, 9}}), 0.5)
	assert.InDelta(t, -2.0, sp.At(0, 0), 1e-12)
	assert.InDelta(t, 3.0, sp.At(0, 1), 1e-12)
}

func TestComparisonsWithMissingAreFalse(t *testing.T) {
	a := mk(t, [][]float64{{1, nan}})
	b := mk(t, [][]float64{{0, 5}})

	assert.Equal(t, 1.0, Gt(a, b).At(0, 0))
	assert.Equal(t, 0.0, Gt(a, b).At(0, 1))
	assert.Equal(t, 0.0, Lt(a, b).At(0, 1))
	assert.Equal(t, 0.0, GtS(a, 0).At(0, 1))
}

func TestBooleanAlgebra(t *testing.T) {
	a := mk(t, [][]float64{{1, 1, 0, nan}})
	b := mk(t, [][]float64{{1, 0, 0, 1}})

	assertCells(t, []float64{1, 0, 0, 0},
		[]float64{And(a, b).At(0, 0), And(a, b).At(0, 1), And(a, b).At(0, 2), And(a, b).At(0, 3)})
	assertCells(t, []float64{1, 1, 0, 1},
		[]float64{Or(a, b).At(0, 0), Or(a, b).At(0, 1), Or(a, b).At(0, 2), Or(a, b).At(0, 3)})
	assertCells(t, []float64{0, 0, 1, 1},
		[]float64{Not(a).At(0, 0), Not(a).At(0, 1), Not(a).At(0, 2), Not(a).At(0, 3)})
}

func TestWhereMissingConditionSelectsElse(t *testing.T) {
	c := mk(t, [][]float64{{1, 0, nan}})
	a := mk(t, [][]float64{{10, 10, 10}})
	b := mk(t, [][]float64{{20, 20, 20}})

	got := Where(c, a, b)
	assertCells(t, []float64{10}, col(got, 0))
	assertCells(t, []float64{20}, col(got, 1))
	assertCells(t, []float64{20}, col(got, 2))

	gs := WhereS(c, -1, 1)
	assertCells(t, []float64{-1}, col(gs, 0))
	assertCells(t, []float64{1}, col(gs, 1))
	assertCells(t, []float64{1}, col(gs, 2))
}

func TestMinMaxAndReplaceZero(t *testing.T) {
	a := mk(t, [][]float64{{1, 5}})
	b := mk(t, [][]float64{{3, 2}})
	assertCells(t, []float64{1, 2}, []float64{Min2(a, b).At(0, 0), Min2(a, b).At(0, 1)})
	assertCells(t, []float64{3, 5}, []float64{Max2(a, b).At(0, 0), Max2(a, b).At(0, 1)})

	assertCells(t, []float64{2, 5}, []float64{MaxS(a, 2).At(0, 0), MaxS(a, 2).At(0, 1)})

	r := ReplaceZero(mk(t, [][]float64{{0, 4}}), 0.0001)
	assert.Equal(t, 0.0001, r.At(0, 0))
	assert.Equal(t, 4.0, r.At(0, 1))
}

func TestFillAndSanitize(t *testing.T) {
	a := mk(t, [][]float64{{nan, 2}})
	f := Fill(a, 1)
	assert.Equal(t, 1.0, f.At(0, 0))
	assert.Equal(t, 2.0, f.At(0, 1))

	s := Sanitize(mk(t, [][]float64{{nan, math.Inf(1), 3}}))
	assert.Equal(t, 0.0, s.At(0, 0))
	assert.Equal(t, 0.0, s.At(0, 1))
	assert.Equal(t, 3.0, s.At(0, 2))
}

func TestOperatorsDoNotMutateInputs(t *testing.T) {
	a := mk(t, [][]float64{{1, 2}})
	b := mk(t, [][]float64{{3, 4}})
	_ = Add(a, b)
	_ = Neg(a)
	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 2.0, a.At(0, 1))
	assert.Equal(t, 3.0, b.At(0, 0))
}
