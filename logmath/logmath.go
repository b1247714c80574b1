// SPDX-License-Identifier: MIT

package logmath

import "math"

const (
	// LogZero represents log(0). It is the most negative finite float64,
	// so it compares below every real log-probability and exp(LogZero) == 0.
	LogZero = -math.MaxFloat64

	// MinusLogThreshold is log(DBL_EPSILON) rounded: once the smaller of two
	// operands trails the larger by more than this, its contribution to
	// log(exp(a)+exp(b)) is below float64 resolution and is dropped.
	MinusLogThreshold = -39.14
)

// LogAdd returns log(exp(a) + exp(b)) without leaving the log domain.
//
// The larger operand is kept and the smaller one contributes
// log1p(exp(smaller-larger)). When the gap exceeds MinusLogThreshold the
// larger operand is returned unchanged, which makes LogZero an exact
// identity element: LogAdd(LogZero, b) == b for every b >= LogZero.
//
// Complexity: O(1).
func LogAdd(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	diff := b - a
	if diff < MinusLogThreshold {
		return a
	}

	return a + math.Log1p(math.Exp(diff))
}

// LogSumExp folds xs with LogAdd in index order starting from LogZero.
// An empty slice yields LogZero.
func LogSumExp(xs []float64) float64 {
	total := LogZero
	for _, x := range xs {
		total = LogAdd(total, x)
	}

	return total
}

// SafeLog is math.Log clamped at LogZero: non-positive inputs map to
// LogZero instead of -Inf or NaN.
func SafeLog(x float64) float64 {
	if x <= 0 {
		return LogZero
	}

	return math.Log(x)
}

// IsLogZero reports whether l is at (or below) the LogZero sentinel.
func IsLogZero(l float64) bool {
	return l <= LogZero
}
