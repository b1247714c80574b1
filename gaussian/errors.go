// SPDX-License-Identifier: MIT

package gaussian

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for a non-positive dimensionality.
	ErrBadShape = errors.New("gaussian: dimensionality must be > 0")

	// ErrDimensionMismatch is returned when a vector's length differs from NInputs.
	ErrDimensionMismatch = errors.New("gaussian: dimension mismatch")

	// ErrNonPositiveVariance is returned when a variance would end up <= 0 or non-finite after flooring.
	ErrNonPositiveVariance = errors.New("gaussian: variance must be finite and > 0")

	// ErrBadThreshold is returned for a negative or non-finite variance threshold or factor.
	ErrBadThreshold = errors.New("gaussian: variance threshold must be finite and >= 0")
)

func gaussianErrorf(method string, err error) error {
	return fmt.Errorf("Gaussian.%s: %w", method, err)
}
