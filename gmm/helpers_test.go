// SPDX-License-Identifier: MIT

package gmm_test

import (
	"testing"

	"github.com/katalvlaran/gaussmix/gmm"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-12

// mustMachine builds a Machine with the given parameters; means and
// variances are K×D in row-major order.
func mustMachine(t testing.TB, weights []float64, means, variances [][]float64, opts ...gmm.Option) *gmm.Machine {
	t.Helper()
	k, d := len(means), len(means[0])
	m, err := gmm.NewMachine(k, d, opts...)
	require.NoError(t, err)
	require.NoError(t, m.SetWeights(weights))
	require.NoError(t, m.SetMeans(dense(means)))
	require.NoError(t, m.SetVariances(dense(variances)))

	return m
}

func dense(rows [][]float64) *mat.Dense {
	out := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, r := range rows {
		out.SetRow(i, r)
	}

	return out
}

// twoPeaks is the 1-D mixture 0.5·N(0,1) + 0.5·N(10,1).
func twoPeaks(t testing.TB, opts ...gmm.Option) *gmm.Machine {
	t.Helper()

	return mustMachine(t, []float64{0.5, 0.5}, [][]float64{{0}, {10}}, [][]float64{{1}, {1}}, opts...)
}

// randomish fills a (k, d) machine with irregular but deterministic values.
func randomish(t testing.TB, k, d int) *gmm.Machine {
	t.Helper()
	weights := make([]float64, k)
	means := make([][]float64, k)
	variances := make([][]float64, k)
	total := 0.0
	for i := 0; i < k; i++ {
		weights[i] = float64(i+1) / 3.7
		total += weights[i]
		means[i] = make([]float64, d)
		variances[i] = make([]float64, d)
		for j := 0; j < d; j++ {
			means[i][j] = float64(i*d+j)*1.1 - 2.3
			variances[i][j] = 0.1 + float64((i+2)*(j+1))/7
		}
	}
	for i := range weights {
		weights[i] /= total
	}

	return mustMachine(t, weights, means, variances)
}
