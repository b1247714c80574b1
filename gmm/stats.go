// SPDX-License-Identifier: MIT

package gmm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gaussmix/store"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Persisted keys of Stats.
const (
	keyStatsLogLikelihood = "log_likelihood"
	keyStatsT             = "t"
	keyStatsN             = "n"
	keyStatsSumPx         = "sum_px"
	keyStatsSumPxx        = "sum_pxx"
)

// Stats accumulates the sufficient statistics of a dataset under a K×D
// mixture. Machine methods only ever add to it; resetting (Init) and
// sizing are the owner's job.
type Stats struct {
	LogLikelihood float64    // Σ log p(x_t | GMM), not averaged
	T             int64      // number of samples folded in
	N             []float64  // K soft counts Σ_t P_i(x_t)
	SumPx         *mat.Dense // K×D Σ_t P_i(x_t)·x_t
	SumPxx        *mat.Dense // K×D Σ_t P_i(x_t)·x_t² (diagonal)
}

// NewStats returns zeroed statistics for K components over D inputs.
func NewStats(k, d int) (*Stats, error) {
	s := &Stats{}
	if err := s.Resize(k, d); err != nil {
		return nil, err
	}

	return s, nil
}

// Resize reallocates s to (k, d) and zeroes it.
func (s *Stats) Resize(k, d int) error {
	if err := validateShape(k, d); err != nil {
		return statsErrorf("Resize", err)
	}
	s.LogLikelihood = 0
	s.T = 0
	s.N = make([]float64, k)
	s.SumPx = mat.NewDense(k, d, nil)
	s.SumPxx = mat.NewDense(k, d, nil)

	return nil
}

// Init zeroes every accumulator, keeping the shape.
func (s *Stats) Init() {
	s.LogLikelihood = 0
	s.T = 0
	for i := range s.N {
		s.N[i] = 0
	}
	if s.SumPx != nil {
		s.SumPx.Zero()
	}
	if s.SumPxx != nil {
		s.SumPxx.Zero()
	}
}

// Dims returns (K, D). D is read from SumPx; nil matrices report D = 0.
func (s *Stats) Dims() (k, d int) {
	k = len(s.N)
	if s.SumPx != nil {
		_, d = s.SumPx.Dims()
	}

	return k, d
}

// consistent reports whether N, SumPx and SumPxx agree on the shape.
func (s *Stats) consistent() bool {
	if s.SumPx == nil || s.SumPxx == nil {
		return false
	}
	r1, c1 := s.SumPx.Dims()
	r2, c2 := s.SumPxx.Dims()

	return r1 == len(s.N) && r2 == len(s.N) && c1 == c2
}

// Clone returns an independent deep copy.
func (s *Stats) Clone() *Stats {
	c := &Stats{
		LogLikelihood: s.LogLikelihood,
		T:             s.T,
		N:             append(make([]float64, 0, len(s.N)), s.N...),
	}
	if s.SumPx != nil {
		c.SumPx = mat.DenseCopyOf(s.SumPx)
	}
	if s.SumPxx != nil {
		c.SumPxx = mat.DenseCopyOf(s.SumPxx)
	}

	return c
}

// Equal reports exact equality of every field.
func (s *Stats) Equal(other *Stats) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.LogLikelihood != other.LogLikelihood || s.T != other.T || !floats.Equal(s.N, other.N) {
		return false
	}

	return denseEqual(s.SumPx, other.SumPx) && denseEqual(s.SumPxx, other.SumPxx)
}

func denseEqual(a, b *mat.Dense) bool {
	if a == nil || b == nil {
		return a == b
	}

	return mat.Equal(a, b)
}

// Save writes the statistics into the current group of w. Matrices are
// stored row-major as flat arrays; their shape is implied by N and the
// "n_inputs" key.
func (s *Stats) Save(w store.Writer) error {
	k, d := s.Dims()
	if !s.consistent() {
		return statsErrorf("Save", ErrShapeMismatch)
	}
	steps := []func() error{
		func() error { return w.AppendInt(keyNComponents, int64(k)) },
		func() error { return w.AppendInt(keyNInputs, int64(d)) },
		func() error { return w.AppendFloat(keyStatsLogLikelihood, s.LogLikelihood) },
		func() error { return w.AppendInt(keyStatsT, s.T) },
		func() error { return w.AppendArray(keyStatsN, s.N) },
		func() error { return w.AppendArray(keyStatsSumPx, flatten(s.SumPx)) },
		func() error { return w.AppendArray(keyStatsSumPxx, flatten(s.SumPxx)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return statsErrorf("Save", err)
		}
	}

	return nil
}

// Load replaces s with statistics read from the current group of r. The
// stored shape must agree with the arrays actually present before anything
// is allocated from it. s is unchanged on error.
func (s *Stats) Load(r store.Reader) error {
	storedK, err := r.ReadInt(keyNComponents)
	if err != nil {
		return statsErrorf("Load", err)
	}
	storedD, err := r.ReadInt(keyNInputs)
	if err != nil {
		return statsErrorf("Load", err)
	}
	k, d, err := validateStoredShape(storedK, storedD)
	if err != nil {
		return statsErrorf("Load", err)
	}

	next := Stats{}
	if next.LogLikelihood, err = r.ReadFloat(keyStatsLogLikelihood); err != nil {
		return statsErrorf("Load", err)
	}
	if next.T, err = r.ReadInt(keyStatsT); err != nil {
		return statsErrorf("Load", err)
	}
	if next.N, err = r.ReadArray(keyStatsN); err != nil {
		return statsErrorf("Load", err)
	}
	if len(next.N) != k {
		return statsErrorf("Load", fmt.Errorf("%s: len=%d, components=%d: %w", keyStatsN, len(next.N), k, ErrShapeMismatch))
	}
	for _, field := range []struct {
		key string
		dst **mat.Dense
	}{
		{keyStatsSumPx, &next.SumPx},
		{keyStatsSumPxx, &next.SumPxx},
	} {
		flat, err := r.ReadArray(field.key)
		if err != nil {
			return statsErrorf("Load", err)
		}
		if !fitsProduct(k, d, len(flat)) {
			return statsErrorf("Load", fmt.Errorf("%s: len=%d, shape (%d,%d): %w", field.key, len(flat), k, d, ErrShapeMismatch))
		}
		*field.dst = mat.NewDense(k, d, flat)
	}
	*s = next

	return nil
}

// flatten copies a matrix row by row into one slice.
func flatten(a *mat.Dense) []float64 {
	r, c := a.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, a.RawRowView(i)...)
	}

	return out
}

// String renders every accumulator.
func (s *Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LogLikelihood = %v\n", s.LogLikelihood)
	fmt.Fprintf(&sb, "T = %d\n", s.T)
	fmt.Fprintf(&sb, "n = %v\n", s.N)
	if s.SumPx != nil {
		fmt.Fprintf(&sb, "sumPx = %v\n", mat.Formatted(s.SumPx, mat.Squeeze()))
	}
	if s.SumPxx != nil {
		fmt.Fprintf(&sb, "sumPxx = %v\n", mat.Formatted(s.SumPxx, mat.Squeeze()))
	}

	return sb.String()
}
