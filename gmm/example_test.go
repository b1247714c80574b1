// SPDX-License-Identifier: MIT

package gmm_test

import (
	"fmt"

	"github.com/katalvlaran/gaussmix/gmm"
	"github.com/katalvlaran/gaussmix/sampler"
	"github.com/katalvlaran/gaussmix/store"
	"gonum.org/v1/gonum/mat"
)

// ExampleMachine_LogLikelihood scores points under 0.5·N(0,1) + 0.5·N(10,1).
func ExampleMachine_LogLikelihood() {
	m, err := gmm.NewMachine(2, 1)
	if err != nil {
		panic(err)
	}
	_ = m.SetMeans(mat.NewDense(2, 1, []float64{0, 10}))

	for _, x := range []float64{0, 5, 10} {
		ll, _ := m.LogLikelihood([]float64{x})
		p, _ := m.Responsibilities([]float64{x})
		fmt.Printf("x=%-2v ll=%.4f p=[%.2f %.2f]\n", x, ll, p[0], p[1])
	}

	// Output:
	// x=0  ll=-1.6121 p=[1.00 0.00]
	// x=5  ll=-13.4189 p=[0.50 0.50]
	// x=10 ll=-1.6121 p=[0.00 1.00]
}

// ExampleMachine_AccStatisticsSampler runs one statistics pass over a dataset.
func ExampleMachine_AccStatisticsSampler() {
	m, _ := gmm.NewMachine(2, 1)
	_ = m.SetMeans(mat.NewDense(2, 1, []float64{0, 10}))

	stats, _ := gmm.NewStats(m.NComponents(), m.NInputs())
	data := sampler.Slice{{-0.5}, {0.5}, {9}, {10}, {11}}
	if err := m.AccStatisticsSampler(data, stats); err != nil {
		panic(err)
	}

	fmt.Println("T =", stats.T)
	fmt.Printf("n = [%.3f %.3f]\n", stats.N[0], stats.N[1])
	fmt.Printf("component means = [%.3f %.3f]\n",
		stats.SumPx.At(0, 0)/stats.N[0], stats.SumPx.At(1, 0)/stats.N[1])

	// Output:
	// T = 5
	// n = [2.000 3.000]
	// component means = [0.000 10.000]
}

// ExampleMachine_Save persists a Machine into a store and reads it back.
func ExampleMachine_Save() {
	m, _ := gmm.NewMachine(3, 2)
	_ = m.SetWeights([]float64{0.2, 0.3, 0.5})

	f := store.NewFile()
	if err := m.Save(f); err != nil {
		panic(err)
	}
	f.Rewind()
	fmt.Println(f.Keys())

	loaded, err := gmm.NewFromStore(f)
	if err != nil {
		panic(err)
	}
	fmt.Println(loaded.Equal(m), loaded.Weights())

	// Output:
	// [component0 component1 component2 n_components n_inputs weights]
	// true [0.2 0.3 0.5]
}
