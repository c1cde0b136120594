package alpha

import (
	"alphapanel/internal/ops"
	"alphapanel/internal/panel"
)

// Short aliases keep the factor bodies close to their published algebraic
// form. Every alias is a direct reference to the operator it names.
var (
	tsSum       = ops.TSSum
	mean        = ops.Mean
	stdDev      = ops.StdDev
	tsMin       = ops.TSMin
	tsMax       = ops.TSMax
	tsRank      = ops.TSRank
	tsArgMax    = ops.TSArgMax
	tsArgMin    = ops.TSArgMin
	highDay     = ops.HighDay
	lowDay      = ops.LowDay
	product     = ops.Product
	decayLinear = ops.DecayLinear
	corr        = ops.Correlation
	cov         = ops.Covariance
	count       = ops.Count
	delta       = ops.Delta
	delay       = ops.Delay
	ema         = ops.EMA
	cumSum      = ops.CumSum
	rank        = ops.Rank

	add         = ops.Add
	sub         = ops.Sub
	mul         = ops.Mul
	div         = ops.Div
	addS        = ops.AddS
	subS        = ops.SubS
	subSM       = ops.SubSM
	mulS        = ops.MulS
	divS        = ops.DivS
	divSM       = ops.DivSM
	neg         = ops.Neg
	abs         = ops.Abs
	sign        = ops.Sign
	logOf       = ops.Log
	pow         = ops.Pow
	powM        = ops.PowM
	signedPower = ops.SignedPower
	min2        = ops.Min2
	max2        = ops.Max2
	maxS        = ops.MaxS
	minS        = ops.MinS

	gt     = ops.Gt
	ge     = ops.Ge
	lt     = ops.Lt
	le     = ops.Le
	eq     = ops.Eq
	gtS    = ops.GtS
	geS    = ops.GeS
	ltS    = ops.LtS
	leS    = ops.LeS
	and    = ops.And
	or     = ops.Or
	not    = ops.Not
	where  = ops.Where
	whereS = ops.WhereS
	fill   = ops.Fill

	replaceZero = ops.ReplaceZero
	sanitize    = ops.Sanitize
)

// scale is the unit-sum form used by nearly every formula.
func scale(x *panel.Matrix) *panel.Matrix { return ops.Scale(x, 1) }

// adv is the w-day average daily volume.
func adv(p *panel.Panel, w int) *panel.Matrix { return ops.Mean(p.Volume(), w) }

func constOf(p *panel.Panel, v float64) *panel.Matrix { return panel.Const(p.Axes(), v) }

func nanOf(p *panel.Panel) *panel.Matrix { return panel.NewMatrix(p.Axes()) }
