// SPDX-License-Identifier: MIT

package gmm

import (
	"fmt"

	"github.com/katalvlaran/gaussmix/gaussian"
	"gonum.org/v1/gonum/mat"
)

// Weights returns a copy of the mixing weights.
func (m *Machine) Weights() []float64 {
	return append(make([]float64, 0, len(m.weights)), m.weights...)
}

// SetWeights copies w into m verbatim; len(w) must equal K.
// The weights are not renormalised.
func (m *Machine) SetWeights(w []float64) error {
	if len(w) != m.nComponents {
		return gmmErrorf("SetWeights", fmt.Errorf("len=%d, components=%d: %w", len(w), m.nComponents, ErrBadShape))
	}
	copy(m.weights, w)

	return nil
}

// Means returns the K×D matrix whose row i is component i's mean.
// The empty Machine yields an empty (0×0) matrix.
func (m *Machine) Means() *mat.Dense {
	return m.rows((*gaussian.Gaussian).Mean)
}

// Variances returns the K×D matrix of component variances.
func (m *Machine) Variances() *mat.Dense {
	return m.rows((*gaussian.Gaussian).Variance)
}

// VarianceThresholds returns the K×D matrix of per-component variance floors.
func (m *Machine) VarianceThresholds() *mat.Dense {
	return m.rows((*gaussian.Gaussian).VarianceThresholds)
}

// rows stacks get(component_i) into a fresh K×D matrix.
func (m *Machine) rows(get func(*gaussian.Gaussian) []float64) *mat.Dense {
	if m.nComponents == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(m.nComponents, m.nInputs, nil)
	for i := range m.components {
		out.SetRow(i, get(&m.components[i]))
	}

	return out
}

// SetMeans assigns row i of means to component i. means must be K×D.
func (m *Machine) SetMeans(means mat.Matrix) error {
	return m.applyRows("SetMeans", means, (*gaussian.Gaussian).SetMean)
}

// SetVariances assigns row i of variances to component i, subject to each
// component's variance floor. m is unchanged on error.
func (m *Machine) SetVariances(variances mat.Matrix) error {
	return m.applyRows("SetVariances", variances, (*gaussian.Gaussian).SetVariance)
}

// SetVarianceThresholdMatrix gives component i the floor in row i.
func (m *Machine) SetVarianceThresholdMatrix(thresholds mat.Matrix) error {
	return m.applyRows("SetVarianceThresholdMatrix", thresholds, (*gaussian.Gaussian).SetVarianceThresholdVector)
}

// SetVarianceThresholdVector gives every component the same per-dimension floor.
func (m *Machine) SetVarianceThresholdVector(thresholds []float64) error {
	if len(thresholds) != m.nInputs {
		return gmmErrorf("SetVarianceThresholdVector", fmt.Errorf("len=%d, inputs=%d: %w", len(thresholds), m.nInputs, ErrBadShape))
	}

	return m.applyEach("SetVarianceThresholdVector", func(g *gaussian.Gaussian) error {
		return g.SetVarianceThresholdVector(thresholds)
	})
}

// SetVarianceThresholdFactor sets every component's floor to factor times
// its current variance.
func (m *Machine) SetVarianceThresholdFactor(factor float64) error {
	return m.applyEach("SetVarianceThresholdFactor", func(g *gaussian.Gaussian) error {
		return g.SetVarianceThresholdFactor(factor)
	})
}

// applyRows validates a K×D matrix and feeds row i to set(component_i).
func (m *Machine) applyRows(method string, a mat.Matrix, set func(*gaussian.Gaussian, []float64) error) error {
	if err := m.validateMatrix(a); err != nil {
		return gmmErrorf(method, err)
	}
	row := make([]float64, m.nInputs)

	return m.applyIndexed(method, func(i int, g *gaussian.Gaussian) error {
		return set(g, mat.Row(row, i, a))
	})
}

func (m *Machine) applyEach(method string, fn func(*gaussian.Gaussian) error) error {
	return m.applyIndexed(method, func(_ int, g *gaussian.Gaussian) error { return fn(g) })
}

// applyIndexed runs fn on clones of every component and commits only if
// all calls succeed, so a failure half-way leaves m untouched. The commit
// writes into the existing elements; pointers from Gaussian(i) stay valid.
func (m *Machine) applyIndexed(method string, fn func(int, *gaussian.Gaussian) error) error {
	staged := make([]gaussian.Gaussian, len(m.components))
	for i := range m.components {
		staged[i] = m.components[i].Clone()
		if err := fn(i, &staged[i]); err != nil {
			return gmmErrorf(method, fmt.Errorf("component %d: %w", i, err))
		}
	}
	for i := range staged {
		m.components[i] = staged[i]
	}

	return nil
}
