// SPDX-License-Identifier: MIT

// Package gaussian implements a multivariate Gaussian with diagonal
// covariance and a per-dimension variance floor, the component type of a
// Gaussian mixture.
//
//	log N(x; μ, σ²) = -½ · ( D·log(2π) + Σ_j log σ²_j + Σ_j (x_j-μ_j)²/σ²_j )
//
// The first two terms depend only on the variance and are cached whenever
// the variance changes, so LogDensity costs one pass over x.
//
// Variance floor:
//   - Every dimension j has a threshold t_j ≥ 0. Any variance written
//     through SetVariance (or implied by a threshold change) is clamped to
//     max(σ²_j, t_j).
//   - SetVarianceThresholdFactor(f) derives t_j = f·σ²_j from the current
//     variance; SetVarianceThresholdVector sets t directly.
//   - Fresh components start with mean 0, variance 1 and t_j = DBL_EPSILON.
//
// Gaussian is a value type holding slices. Assigning one Gaussian to
// another shares the slices; use Clone for an independent copy.
package gaussian
