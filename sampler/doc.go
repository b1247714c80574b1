// SPDX-License-Identifier: MIT

// Package sampler defines how datasets are fed to the mixture code.
//
// A Sampler is an indexed, finite sequence of feature vectors:
//
//	for i := int64(0); i < s.SampleCount(); i++ {
//		x, err := s.SampleAt(i)
//		...
//	}
//
// Three implementations cover the common sources:
//   - Slice  : a [][]float64 held in memory.
//   - Frames : labeled Frame values (the scoring pipeline's input type).
//   - Matrix : rows of any gonum mat.Matrix, one sample per row.
//
// Samplers are read-only views; they do not copy their backing data, and
// callers must not mutate vectors returned by SampleAt.
package sampler
