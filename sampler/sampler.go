// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrOutOfRange is returned by SampleAt for an index outside [0, SampleCount()).
var ErrOutOfRange = errors.New("sampler: index out of range")

// Sampler is an indexed dataset of feature vectors.
type Sampler interface {
	// SampleCount returns the number of samples.
	SampleCount() int64
	// SampleAt returns the i-th feature vector, 0 <= i < SampleCount().
	SampleAt(i int64) ([]float64, error)
}

// Frame is a labeled feature vector.
type Frame struct {
	Features []float64
	Label    string
}

// Size returns the feature dimensionality.
func (f Frame) Size() int { return len(f.Features) }

func rangeErr(i, n int64) error {
	return fmt.Errorf("SampleAt(%d) of %d: %w", i, n, ErrOutOfRange)
}

// Slice is a Sampler over in-memory rows.
type Slice [][]float64

// SampleCount implements Sampler.
func (s Slice) SampleCount() int64 { return int64(len(s)) }

// SampleAt implements Sampler.
func (s Slice) SampleAt(i int64) ([]float64, error) {
	if i < 0 || i >= int64(len(s)) {
		return nil, rangeErr(i, int64(len(s)))
	}

	return s[i], nil
}

// Frames is a Sampler over labeled frames; labels are ignored by SampleAt.
type Frames []Frame

// SampleCount implements Sampler.
func (s Frames) SampleCount() int64 { return int64(len(s)) }

// SampleAt implements Sampler.
func (s Frames) SampleAt(i int64) ([]float64, error) {
	if i < 0 || i >= int64(len(s)) {
		return nil, rangeErr(i, int64(len(s)))
	}

	return s[i].Features, nil
}

// Matrix is a Sampler over the rows of a gonum matrix.
type Matrix struct {
	m    mat.Matrix
	rows int
}

// NewMatrix wraps m; each row is one sample and each column one feature.
func NewMatrix(m mat.Matrix) *Matrix {
	r, _ := m.Dims()
	return &Matrix{m: m, rows: r}
}

// SampleCount implements Sampler.
func (s *Matrix) SampleCount() int64 { return int64(s.rows) }

// SampleAt implements Sampler. Rows of a *mat.Dense are returned without
// copying; other matrix types are materialised with mat.Row.
func (s *Matrix) SampleAt(i int64) ([]float64, error) {
	if i < 0 || i >= int64(s.rows) {
		return nil, rangeErr(i, int64(s.rows))
	}
	if d, ok := s.m.(mat.RawRowViewer); ok {
		return d.RawRowView(int(i)), nil
	}

	return mat.Row(nil, int(i), s.m), nil
}

// Compile-time checks.
var (
	_ Sampler = Slice(nil)
	_ Sampler = Frames(nil)
	_ Sampler = (*Matrix)(nil)
)
