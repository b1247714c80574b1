// SPDX-License-Identifier: MIT

package gmm

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "gmm: ". Methods wrap sentinels with
// gmmErrorf ("Machine.<method>: %w"); callers match with errors.Is.
var (
	// ErrDegenerateMixture rejects a mixture with no components (K <= 0).
	ErrDegenerateMixture = errors.New("gmm: mixture needs at least one component")

	// ErrBadShape reports a non-positive input dimensionality or a vector/matrix
	// argument whose shape does not match (K, D).
	ErrBadShape = errors.New("gmm: invalid shape")

	// ErrDimensionMismatch reports a feature vector whose length differs from D.
	// The concrete error is a *DimensionError carrying both sizes.
	ErrDimensionMismatch = errors.New("gmm: dimension mismatch")

	// ErrShapeMismatch reports Stats that are not sized (K, D) for the Machine.
	ErrShapeMismatch = errors.New("gmm: statistics shape mismatch")

	// ErrNilStats reports a nil *Stats argument.
	ErrNilStats = errors.New("gmm: nil statistics")

	// ErrNilSampler reports a nil sampler argument.
	ErrNilSampler = errors.New("gmm: nil sampler")
)

// DimensionError is returned when a feature vector has the wrong length.
// errors.Is(err, ErrDimensionMismatch) holds for it.
type DimensionError struct {
	Expected int // Machine.NInputs()
	Actual   int // len(features)
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("gmm: dimension mismatch: expected %d inputs, got %d", e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrDimensionMismatch) succeed.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func gmmErrorf(method string, err error) error {
	return fmt.Errorf("Machine.%s: %w", method, err)
}

func statsErrorf(method string, err error) error {
	return fmt.Errorf("Stats.%s: %w", method, err)
}
