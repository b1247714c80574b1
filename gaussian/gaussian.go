// SPDX-License-Identifier: MIT

package gaussian

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gaussmix/store"
	"gonum.org/v1/gonum/floats"
)

// DefaultVarianceThreshold is the floor given to fresh components.
const DefaultVarianceThreshold = 2.220446049250313e-16 // DBL_EPSILON

// Persisted keys, relative to the component's group.
const (
	keyNInputs            = "n_inputs"
	keyMean               = "mean"
	keyVariance           = "variance"
	keyVarianceThresholds = "variance_thresholds"
)

var log2Pi = math.Log(2 * math.Pi)

// Gaussian is a diagonal-covariance multivariate normal distribution.
// The zero value is a 0-dimensional Gaussian; call Resize or New before use.
type Gaussian struct {
	nInputs            int
	mean               []float64
	variance           []float64
	varianceThresholds []float64
	gNorm              float64 // D·log(2π) + Σ log σ²_j
}

// New returns a d-dimensional standard Gaussian (mean 0, variance 1).
func New(d int) (*Gaussian, error) {
	g := &Gaussian{}
	if err := g.Resize(d); err != nil {
		return nil, err
	}

	return g, nil
}

// Resize reallocates g to d dimensions, discarding previous parameters.
func (g *Gaussian) Resize(d int) error {
	if d <= 0 {
		return gaussianErrorf("Resize", ErrBadShape)
	}
	g.nInputs = d
	g.mean = make([]float64, d)
	g.variance = make([]float64, d)
	floats.AddConst(1, g.variance)
	g.varianceThresholds = make([]float64, d)
	floats.AddConst(DefaultVarianceThreshold, g.varianceThresholds)
	g.preCompute()

	return nil
}

// NInputs returns the dimensionality.
func (g *Gaussian) NInputs() int { return g.nInputs }

// Mean returns a copy of the mean vector.
func (g *Gaussian) Mean() []float64 { return clone(g.mean) }

// Variance returns a copy of the (floored) variance vector.
func (g *Gaussian) Variance() []float64 { return clone(g.variance) }

// VarianceThresholds returns a copy of the per-dimension variance floor.
func (g *Gaussian) VarianceThresholds() []float64 { return clone(g.varianceThresholds) }

// SetMean copies mean into g.
func (g *Gaussian) SetMean(mean []float64) error {
	if len(mean) != g.nInputs {
		return gaussianErrorf("SetMean", ErrDimensionMismatch)
	}
	copy(g.mean, mean)

	return nil
}

// SetVariance copies variance into g and applies the variance floor.
// g is unchanged on error.
func (g *Gaussian) SetVariance(variance []float64) error {
	if len(variance) != g.nInputs {
		return gaussianErrorf("SetVariance", ErrDimensionMismatch)
	}
	floored, err := applyFloor(variance, g.varianceThresholds)
	if err != nil {
		return gaussianErrorf("SetVariance", err)
	}
	g.variance = floored
	g.preCompute()

	return nil
}

// SetVarianceThresholdFactor sets every threshold to factor·σ²_j of the
// current variance and re-applies the floor.
func (g *Gaussian) SetVarianceThresholdFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return gaussianErrorf("SetVarianceThresholdFactor", ErrBadThreshold)
	}
	thresholds := clone(g.variance)
	floats.Scale(factor, thresholds)

	return g.setThresholds("SetVarianceThresholdFactor", thresholds)
}

// SetVarianceThresholdVector sets the per-dimension floor and re-applies it.
func (g *Gaussian) SetVarianceThresholdVector(thresholds []float64) error {
	if len(thresholds) != g.nInputs {
		return gaussianErrorf("SetVarianceThresholdVector", ErrDimensionMismatch)
	}

	return g.setThresholds("SetVarianceThresholdVector", clone(thresholds))
}

func (g *Gaussian) setThresholds(method string, thresholds []float64) error {
	for _, t := range thresholds {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return gaussianErrorf(method, ErrBadThreshold)
		}
	}
	floored, err := applyFloor(g.variance, thresholds)
	if err != nil {
		return gaussianErrorf(method, err)
	}
	g.varianceThresholds = thresholds
	g.variance = floored
	g.preCompute()

	return nil
}

// applyFloor returns max(variance, thresholds) elementwise, rejecting
// results that are not finite and strictly positive.
func applyFloor(variance, thresholds []float64) ([]float64, error) {
	out := make([]float64, len(variance))
	for j, v := range variance {
		if v < thresholds[j] {
			v = thresholds[j]
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, ErrNonPositiveVariance
		}
		out[j] = v
	}

	return out, nil
}

// preCompute refreshes the cached normalisation term.
func (g *Gaussian) preCompute() {
	g.gNorm = float64(g.nInputs) * log2Pi
	for _, v := range g.variance {
		g.gNorm += math.Log(v)
	}
}

// LogDensity returns log N(x; mean, variance).
// x must have length NInputs; like gonum's vector kernels it panics otherwise.
func (g *Gaussian) LogDensity(x []float64) float64 {
	if len(x) != g.nInputs {
		panic(gaussianErrorf("LogDensity", ErrDimensionMismatch))
	}
	z := 0.0
	for j, v := range g.variance {
		d := x[j] - g.mean[j]
		z += d * d / v
	}

	return -0.5 * (g.gNorm + z)
}

// Clone returns a deep copy of g.
func (g *Gaussian) Clone() Gaussian {
	return Gaussian{
		nInputs:            g.nInputs,
		mean:               clone(g.mean),
		variance:           clone(g.variance),
		varianceThresholds: clone(g.varianceThresholds),
		gNorm:              g.gNorm,
	}
}

// Equal reports whether g and other have the same dimensionality and
// bit-for-bit equal mean, variance and thresholds.
func (g *Gaussian) Equal(other *Gaussian) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.nInputs != other.nInputs {
		return false
	}

	return floats.Equal(g.mean, other.mean) &&
		floats.Equal(g.variance, other.variance) &&
		floats.Equal(g.varianceThresholds, other.varianceThresholds)
}

// Save writes the component into the current group of w.
func (g *Gaussian) Save(w store.Writer) error {
	if err := w.AppendInt(keyNInputs, int64(g.nInputs)); err != nil {
		return gaussianErrorf("Save", err)
	}
	if err := w.AppendArray(keyMean, g.mean); err != nil {
		return gaussianErrorf("Save", err)
	}
	if err := w.AppendArray(keyVariance, g.variance); err != nil {
		return gaussianErrorf("Save", err)
	}
	if err := w.AppendArray(keyVarianceThresholds, g.varianceThresholds); err != nil {
		return gaussianErrorf("Save", err)
	}

	return nil
}

// Load replaces g with the component stored in the current group of r.
// g is unchanged on error.
func (g *Gaussian) Load(r store.Reader) error {
	n, err := r.ReadInt(keyNInputs)
	if err != nil {
		return gaussianErrorf("Load", err)
	}
	if n <= 0 {
		return gaussianErrorf("Load", ErrBadShape)
	}
	next := Gaussian{nInputs: int(n)}
	for _, field := range []struct {
		key string
		dst *[]float64
	}{
		{keyMean, &next.mean},
		{keyVariance, &next.variance},
		{keyVarianceThresholds, &next.varianceThresholds},
	} {
		v, err := r.ReadArray(field.key)
		if err != nil {
			return gaussianErrorf("Load", err)
		}
		if len(v) != next.nInputs {
			return gaussianErrorf("Load", fmt.Errorf("%s: %w", field.key, ErrDimensionMismatch))
		}
		*field.dst = v
	}
	for _, v := range next.variance {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return gaussianErrorf("Load", ErrNonPositiveVariance)
		}
	}
	next.preCompute()
	*g = next

	return nil
}

// String renders mean, variance and thresholds on separate lines.
func (g *Gaussian) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mean = %v\n", g.mean)
	fmt.Fprintf(&sb, "Variance = %v\n", g.variance)
	fmt.Fprintf(&sb, "Variance thresholds = %v\n", g.varianceThresholds)

	return sb.String()
}

func clone(s []float64) []float64 {
	if s == nil {
		return nil
	}

	return append(make([]float64, 0, len(s)), s...)
}
