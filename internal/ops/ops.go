// Package ops implements the primitive operators factor formulas compose:
// causal time-series rolling reductions over a trailing window, per-date
// cross-sectional transforms, and elementwise arithmetic.
//
// Numeric degeneracy (zero divisors, all-missing windows) never raises; it
// yields NaN, or 0 where an operator documents that coercion. Structural
// misuse (non-positive window, mismatched axes) panics with *OpError, which
// the evaluation driver recovers into a per-factor failure.
package ops

import (
	"fmt"

	"alphapanel/internal/panel"
)

// OpError reports structural misuse of an operator.
type OpError struct {
	Op     string
	Reason string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("ops.%s: %s", e.Op, e.Reason)
}

func structural(op, format string, args ...interface{}) {
	panic(&OpError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

func checkWindow(op string, w int) {
	if w <= 0 {
		structural(op, "window must be positive, got %d", w)
	}
}

func checkLag(op string, k int) {
	if k < 0 {
		structural(op, "lag must be non-negative, got %d", k)
	}
}

func checkShapes(op string, a, b *panel.Matrix) {
	if !a.SameShape(b) {
		structural(op, "mismatched axes: %dx%d vs %dx%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
}
