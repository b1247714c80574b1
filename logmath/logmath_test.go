// SPDX-License-Identifier: MIT

package logmath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaussmix/logmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const eps = 1e-12

// TestLogAdd_LogZeroIdentity verifies LogAdd(LogZero, b) == b exactly, in both argument orders.
func TestLogAdd_LogZeroIdentity(t *testing.T) {
	for _, b := range []float64{-1e6, -745.2, -3.5, 0, 2.25, 700} {
		assert.Equal(t, b, logmath.LogAdd(logmath.LogZero, b), "LogAdd(LogZero, %g)", b)
		assert.Equal(t, b, logmath.LogAdd(b, logmath.LogZero), "LogAdd(%g, LogZero)", b)
	}
	assert.Equal(t, logmath.LogZero, logmath.LogAdd(logmath.LogZero, logmath.LogZero))
}

// TestLogAdd_MatchesDirectSum checks small operands against log(exp(a)+exp(b)).
func TestLogAdd_MatchesDirectSum(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{0, 0},
		{-1, -2},
		{math.Log(0.25), math.Log(0.75)},
		{3, -3},
		{-10, -10.5},
	}
	for _, tc := range cases {
		want := math.Log(math.Exp(tc.a) + math.Exp(tc.b))
		assert.InDelta(t, want, logmath.LogAdd(tc.a, tc.b), eps, "a=%g b=%g", tc.a, tc.b)
		assert.Equal(t, logmath.LogAdd(tc.a, tc.b), logmath.LogAdd(tc.b, tc.a), "symmetry a=%g b=%g", tc.a, tc.b)
	}
}

// TestLogAdd_NoUnderflow shows the point of the log domain: both exp() terms underflow to 0.
func TestLogAdd_NoUnderflow(t *testing.T) {
	a, b := -2000.0, -2000.0
	require.Equal(t, 0.0, math.Exp(a))

	got := logmath.LogAdd(a, b)
	assert.InDelta(t, -2000+math.Ln2, got, eps)
	assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
}

// TestLogAdd_BelowThreshold returns the larger operand untouched when the gap is huge.
func TestLogAdd_BelowThreshold(t *testing.T) {
	assert.Equal(t, 5.0, logmath.LogAdd(5, 5-100))
	assert.Equal(t, 5.0, logmath.LogAdd(5-100, 5))
}

// TestLogSumExp_AgreesWithGonum cross-checks the fold against gonum's implementation.
func TestLogSumExp_AgreesWithGonum(t *testing.T) {
	xs := []float64{-1.5, -0.2, -7, -3.25, 0.4}
	assert.InDelta(t, floats.LogSumExp(xs), logmath.LogSumExp(xs), eps)
	assert.Equal(t, logmath.LogZero, logmath.LogSumExp(nil))
}

func TestSafeLog(t *testing.T) {
	assert.Equal(t, logmath.LogZero, logmath.SafeLog(0))
	assert.Equal(t, logmath.LogZero, logmath.SafeLog(-1))
	assert.Equal(t, math.Log(0.3), logmath.SafeLog(0.3))
	assert.Equal(t, 0.0, math.Exp(logmath.LogZero), "exp(LogZero) must underflow to 0")
	assert.True(t, logmath.IsLogZero(logmath.LogZero))
	assert.False(t, logmath.IsLogZero(-1e300))
}
