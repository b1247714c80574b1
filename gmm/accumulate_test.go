// SPDX-License-Identifier: MIT

package gmm_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gaussmix/gmm"
	"github.com/katalvlaran/gaussmix/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func mustStats(t testing.TB, m *gmm.Machine) *gmm.Stats {
	t.Helper()
	s, err := gmm.NewStats(m.NComponents(), m.NInputs())
	require.NoError(t, err)

	return s
}

// TestAccStatistics_SingleSample checks every accumulator by hand.
func TestAccStatistics_SingleSample(t *testing.T) {
	m := mustMachine(t, []float64{0.3, 0.7}, [][]float64{{0, 1}, {2, 2}}, [][]float64{{1, 1}, {2, 0.5}})
	s := mustStats(t, m)
	x := []float64{1.5, -0.5}

	require.NoError(t, m.AccStatistics(x, s))

	ll, err := m.LogLikelihood(x)
	require.NoError(t, err)
	p, err := m.Responsibilities(x)
	require.NoError(t, err)

	assert.Equal(t, ll, s.LogLikelihood)
	assert.Equal(t, int64(1), s.T)
	assert.Equal(t, p, s.N)
	for i := range p {
		for j := range x {
			px := p[i] * x[j]
			assert.Equal(t, px, s.SumPx.At(i, j))
			assert.Equal(t, px*x[j], s.SumPxx.At(i, j))
		}
	}
	assert.InDelta(t, 1.0, floats.Sum(s.N), 1e-12)
}

// TestAccStatistics_MatchesSampler: sample-by-sample and whole-dataset
// accumulation are bit-identical for the same order.
func TestAccStatistics_MatchesSampler(t *testing.T) {
	m := randomish(t, 3, 2)
	data := sampler.Slice{{0.1, -0.4}, {3, 2}, {-7, 1.25}}

	one := mustStats(t, m)
	for _, x := range data {
		require.NoError(t, m.AccStatistics(x, one))
	}
	all := mustStats(t, m)
	require.NoError(t, m.AccStatisticsSampler(data, all))

	assert.True(t, one.Equal(all), "per-sample:\n%v\nsampler:\n%v", one, all)
	assert.Equal(t, int64(3), all.T)
	assert.InDelta(t, 3.0, floats.Sum(all.N), 1e-9)
}

// TestAccStatisticsSampler_Sources feeds the same data through every sampler.
func TestAccStatisticsSampler_Sources(t *testing.T) {
	m := twoPeaks(t)
	rows := [][]float64{{0.5}, {9}, {4}}
	frames := make(sampler.Frames, len(rows))
	for i, r := range rows {
		frames[i] = sampler.Frame{Features: r}
	}

	want := mustStats(t, m)
	require.NoError(t, m.AccStatisticsSampler(sampler.Slice(rows), want))
	for name, s := range map[string]sampler.Sampler{
		"frames": frames,
		"matrix": sampler.NewMatrix(mat.NewDense(3, 1, []float64{0.5, 9, 4})),
	} {
		got := mustStats(t, m)
		require.NoError(t, m.AccStatisticsSampler(s, got), name)
		assert.True(t, want.Equal(got), name)
	}
}

// TestAccStatistics_Accumulates never resets the caller's statistics.
func TestAccStatistics_Accumulates(t *testing.T) {
	m := twoPeaks(t)
	s := mustStats(t, m)
	data := sampler.Slice{{0}, {10}}

	require.NoError(t, m.AccStatisticsSampler(data, s))
	first := s.Clone()
	require.NoError(t, m.AccStatisticsSampler(data, s))

	assert.Equal(t, int64(4), s.T)
	assert.InDelta(t, 2*first.LogLikelihood, s.LogLikelihood, 1e-9)
	assert.InDelta(t, 2*first.N[0], s.N[0], 1e-12)

	s.Init()
	assert.Zero(t, s.T)
	assert.Zero(t, s.LogLikelihood)
	assert.Equal(t, []float64{0, 0}, s.N)
	assert.True(t, mat.Equal(mat.NewDense(2, 1, nil), s.SumPx))
}

// TestAccStatistics_Errors covers every rejected argument.
func TestAccStatistics_Errors(t *testing.T) {
	m := twoPeaks(t)

	assert.ErrorIs(t, m.AccStatistics([]float64{1}, nil), gmm.ErrNilStats)

	wrong, err := gmm.NewStats(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, m.AccStatistics([]float64{1}, wrong), gmm.ErrShapeMismatch)
	assert.ErrorIs(t, m.AccStatistics([]float64{1}, &gmm.Stats{N: []float64{0, 0}}), gmm.ErrShapeMismatch)

	s := mustStats(t, m)
	err = m.AccStatistics([]float64{1, 2}, s)
	var de *gmm.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Expected)
	assert.Zero(t, s.T, "nothing accumulated")

	assert.ErrorIs(t, m.AccStatisticsSampler(nil, s), gmm.ErrNilSampler)

	empty := gmm.New()
	assert.ErrorIs(t, empty.AccStatistics(nil, &gmm.Stats{}), gmm.ErrDegenerateMixture)
}

// TestAccStatisticsSampler_StopsAtBadSample keeps the samples before it.
func TestAccStatisticsSampler_StopsAtBadSample(t *testing.T) {
	m := twoPeaks(t)
	s := mustStats(t, m)
	err := m.AccStatisticsSampler(sampler.Slice{{1}, {1, 2}, {3}}, s)
	assert.ErrorIs(t, err, gmm.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "sample 1")
	assert.Equal(t, int64(1), s.T)
}

// TestAccStatisticsSampler_Logs reports the dataset pass at debug level.
func TestAccStatisticsSampler_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := twoPeaks(t, gmm.WithLogger(zap.New(core)))
	s := mustStats(t, m)
	require.NoError(t, m.AccStatisticsSampler(sampler.Slice{{0}, {10}}, s))

	entries := logs.FilterMessage("gmm: accumulated statistics").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["samples"])
	assert.Equal(t, s.LogLikelihood, fields["log_likelihood"])
}
