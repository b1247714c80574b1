// SPDX-License-Identifier: MIT

// Package logmath holds the log-domain helpers shared by the mixture code.
//
// Probabilities of high-dimensional Gaussians underflow float64 long before
// they become meaningless, so every likelihood in gaussmix travels as a
// natural logarithm. Sums of probabilities then become log-additions:
//
//	log(exp(a) + exp(b)) = max(a,b) + log(1 + exp(-|a-b|))
//
// Key points:
//   - LogZero is a finite stand-in for log(0). exp(LogZero) underflows to 0
//     and arithmetic on it never produces NaN.
//   - LogAdd(LogZero, b) == b exactly, so a running total can start at
//     LogZero and fold terms one by one.
//   - All functions are pure and allocation free (LogSumExp reads its input
//     slice only).
//
// Usage:
//
//	total := logmath.LogZero
//	for _, l := range terms {
//		total = logmath.LogAdd(total, l)
//	}
package logmath
