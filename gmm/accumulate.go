// SPDX-License-Identifier: MIT

package gmm

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gaussmix/sampler"
	"go.uber.org/zap"
)

// AccStatistics folds one sample into stats:
//
//	LogLikelihood += log p(x|m); T++; N[i] += P_i
//	SumPx[i,j] += P_i·x_j; SumPxx[i,j] += (P_i·x_j)·x_j
//
// stats must be sized (K, D) for m. Nothing is accumulated on error.
func (m *Machine) AccStatistics(x []float64, stats *Stats) error {
	if err := m.validateAccumulation(stats); err != nil {
		return gmmErrorf("AccStatistics", err)
	}
	if err := m.validateInput(x); err != nil {
		return gmmErrorf("AccStatistics", err)
	}
	m.accumulate(x, stats, make([]float64, m.nComponents), make([]float64, m.nComponents))
	m.metrics.accumulated(1)

	return nil
}

// AccStatisticsSampler folds every sample of s into stats in index order
// 0..SampleCount()-1. It stops at the first sample that cannot be read or
// has the wrong size; samples before it stay accumulated.
func (m *Machine) AccStatisticsSampler(s sampler.Sampler, stats *Stats) error {
	if s == nil {
		return gmmErrorf("AccStatisticsSampler", ErrNilSampler)
	}
	if err := m.validateAccumulation(stats); err != nil {
		return gmmErrorf("AccStatisticsSampler", err)
	}

	start := time.Now()
	n := s.SampleCount()
	logWeighted := make([]float64, m.nComponents)
	p := make([]float64, m.nComponents)
	before := stats.LogLikelihood
	for i := int64(0); i < n; i++ {
		x, err := s.SampleAt(i)
		if err == nil {
			err = m.validateInput(x)
		}
		if err != nil {
			m.metrics.accumulated(i)
			return gmmErrorf("AccStatisticsSampler", fmt.Errorf("sample %d: %w", i, err))
		}
		m.accumulate(x, stats, logWeighted, p)
	}
	m.metrics.accumulated(n)
	m.metrics.pass(start)
	m.log().Debug("gmm: accumulated statistics",
		zap.Int64("samples", n),
		zap.Float64("log_likelihood", stats.LogLikelihood-before),
		zap.Int64("total_samples", stats.T),
	)

	return nil
}

func (m *Machine) validateAccumulation(stats *Stats) error {
	if m.nComponents == 0 {
		return ErrDegenerateMixture
	}
	if err := m.validateComponents(); err != nil {
		return err
	}

	return m.validateStats(stats)
}

// accumulate is the unchecked kernel; logWeighted and p are scratch
// buffers of length K.
func (m *Machine) accumulate(x []float64, stats *Stats, logWeighted, p []float64) {
	ll := m.logLikelihood(x, logWeighted)
	responsibilities(ll, logWeighted, p)

	stats.LogLikelihood += ll
	stats.T++
	for i, pi := range p {
		stats.N[i] += pi
		sumPx := stats.SumPx.RawRowView(i)
		sumPxx := stats.SumPxx.RawRowView(i)
		for j, xj := range x {
			px := pi * xj
			sumPx[j] += px
			sumPxx[j] += px * xj
		}
	}
}
