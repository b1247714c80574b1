// SPDX-License-Identifier: MIT

package gmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateShape checks a requested (K, D) pair.
func validateShape(k, d int) error {
	if k <= 0 {
		return ErrDegenerateMixture
	}
	if d <= 0 {
		return fmt.Errorf("n_inputs=%d: %w", d, ErrBadShape)
	}

	return nil
}

// validateStoredShape checks a (K, D) pair read from a store and converts it
// to int. Nothing may be allocated from K or D before this passes.
func validateStoredShape(k, d int64) (int, int, error) {
	if k > math.MaxInt || d > math.MaxInt {
		return 0, 0, fmt.Errorf("stored shape (%d,%d) exceeds int: %w", k, d, ErrBadShape)
	}
	if err := validateShape(int(k), int(d)); err != nil {
		return 0, 0, err
	}

	return int(k), int(d), nil
}

// fitsProduct reports whether k·d == n without overflowing int.
func fitsProduct(k, d, n int) bool {
	if d != 0 && k > math.MaxInt/d {
		return false
	}

	return k*d == n
}

// validateComponents checks that no component was reshaped through
// Gaussian(i) since the last Resize or Load.
func (m *Machine) validateComponents() error {
	for i := range m.components {
		if d := m.components[i].NInputs(); d != m.nInputs {
			return fmt.Errorf("component %d has %d inputs, machine %d: %w", i, d, m.nInputs, ErrBadShape)
		}
	}

	return nil
}

// validateInput checks a feature vector against D.
func (m *Machine) validateInput(x []float64) error {
	if len(x) != m.nInputs {
		return &DimensionError{Expected: m.nInputs, Actual: len(x)}
	}

	return nil
}

// validateStats checks that s is sized (K, D) for m.
func (m *Machine) validateStats(s *Stats) error {
	if s == nil {
		return ErrNilStats
	}
	k, d := s.Dims()
	if k != m.nComponents || d != m.nInputs || !s.consistent() {
		return fmt.Errorf("stats (%d,%d), machine (%d,%d): %w", k, d, m.nComponents, m.nInputs, ErrShapeMismatch)
	}

	return nil
}

// validateMatrix checks that a is a (K, D) matrix.
func (m *Machine) validateMatrix(a mat.Matrix) error {
	if a == nil {
		return fmt.Errorf("nil matrix: %w", ErrBadShape)
	}
	r, c := a.Dims()
	if r != m.nComponents || c != m.nInputs {
		return fmt.Errorf("matrix (%d,%d), machine (%d,%d): %w", r, c, m.nComponents, m.nInputs, ErrBadShape)
	}

	return nil
}
