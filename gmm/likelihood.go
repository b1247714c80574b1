// SPDX-License-Identifier: MIT

package gmm

import (
	"math"

	"github.com/katalvlaran/gaussmix/logmath"
	"github.com/katalvlaran/gaussmix/sampler"
)

// LogLikelihood returns log p(x | m) = log Σ_i w_i·N(x; μ_i, σ²_i).
// It returns exactly the total of LogLikelihoodWeighted.
// len(x) must equal NInputs(); otherwise a *DimensionError is returned.
func (m *Machine) LogLikelihood(x []float64) (float64, error) {
	ll, _, err := m.LogLikelihoodWeighted(x)
	if err != nil {
		return 0, err
	}

	return ll, nil
}

// LogLikelihoodWeighted returns log p(x | m) together with the per-component
// terms l_i = log w_i + log N(x; μ_i, σ²_i) it was folded from.
func (m *Machine) LogLikelihoodWeighted(x []float64) (float64, []float64, error) {
	if err := m.validateInput(x); err != nil {
		return 0, nil, gmmErrorf("LogLikelihood", err)
	}
	if err := m.validateComponents(); err != nil {
		return 0, nil, gmmErrorf("LogLikelihood", err)
	}
	logWeighted := make([]float64, m.nComponents)
	m.metrics.scored()

	return m.logLikelihood(x, logWeighted), logWeighted, nil
}

// logLikelihood is the unchecked kernel: len(x) == nInputs and
// len(logWeighted) == nComponents are preconditions. Components are folded
// in index order; a zero weight contributes LogZero.
func (m *Machine) logLikelihood(x, logWeighted []float64) float64 {
	ll := logmath.LogZero
	for i := range m.components {
		l := logmath.SafeLog(m.weights[i]) + m.components[i].LogDensity(x)
		logWeighted[i] = l
		ll = logmath.LogAdd(ll, l)
	}

	return ll
}

// responsibilities writes P_i = exp(l_i - ll) into dst. When x is impossible
// under the mixture (ll at LogZero) every responsibility is 0.
func responsibilities(ll float64, logWeighted, dst []float64) {
	if logmath.IsLogZero(ll) {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	for i, l := range logWeighted {
		dst[i] = math.Exp(l - ll)
	}
}

// Responsibilities returns the posterior probability of each component
// having generated x. The values sum to 1 up to rounding.
func (m *Machine) Responsibilities(x []float64) ([]float64, error) {
	ll, logWeighted, err := m.LogLikelihoodWeighted(x)
	if err != nil {
		return nil, err
	}
	p := make([]float64, m.nComponents)
	responsibilities(ll, logWeighted, p)

	return p, nil
}

// Forward scores a frame: its log-likelihood under m.
// A frame whose size differs from NInputs() yields a *DimensionError.
func (m *Machine) Forward(frame sampler.Frame) (float64, error) {
	if err := m.validateInput(frame.Features); err != nil {
		return 0, gmmErrorf("Forward", err)
	}
	if err := m.validateComponents(); err != nil {
		return 0, gmmErrorf("Forward", err)
	}
	logWeighted := make([]float64, m.nComponents)
	m.metrics.scored()

	return m.logLikelihood(frame.Features, logWeighted), nil
}
