// SPDX-License-Identifier: MIT

// Package gmm evaluates Gaussian Mixture Models and accumulates the
// sufficient statistics an EM trainer needs to re-estimate them.
//
// 🚀 What is inside?
//
//	Machine : K diagonal Gaussians (package gaussian) plus K mixing weights.
//	Stats   : running zeroth/first/second order moments over a dataset.
//
// Likelihood:
//
//	l_i(x)       = log w_i + log N(x; μ_i, σ²_i)
//	log p(x|GMM) = LogAdd(...LogAdd(LogAdd(LogZero, l_0), l_1)..., l_{K-1})
//
// The fold runs in the log domain (package logmath) so 40-dimensional
// features whose densities underflow float64 still produce finite scores.
//
// Statistics (one sample x):
//
//	P_i          = exp(l_i - log p(x|GMM))      responsibilities, Σ P_i = 1
//	n_i         += P_i
//	sumPx[i,j]  += P_i·x_j
//	sumPxx[i,j] += (P_i·x_j)·x_j
//	T++, logLikelihood += log p(x|GMM)
//
// Datasets are folded sample by sample in index order (AccStatisticsSampler),
// so two passes over the same data are bit-for-bit reproducible.
//
// Shape rules:
//   - A sized Machine has K >= 1 components over D >= 1 inputs. Resizing to
//     K <= 0 is rejected with ErrDegenerateMixture; the empty (0,0) Machine
//     returned by New exists only as a Load target: it scores the empty
//     vector as LogZero and rejects any other input with *DimensionError.
//   - Resize resets weights to 1/K and every component to N(0, I).
//   - SetWeights does not renormalise; keeping Σw = 1 is the caller's job.
//   - Stats must be sized (K, D) for the Machine it is passed to; any other
//     shape fails fast with ErrShapeMismatch.
//
// Persistence (Save/Load against store.Writer/store.Reader):
//
//	n_components : int
//	n_inputs     : int
//	component0 … component{K-1} : group (see gaussian.Gaussian.Save)
//	weights      : []float64
//
// Load is atomic: on any error the receiver keeps its previous parameters.
// The stored shape is checked against the arrays actually present before
// anything is allocated from it.
//
// Options: WithLogger routes debug events (resize, save, load, dataset
// passes) to a zap logger; WithMetrics counts scored and accumulated samples
// in Prometheus collectors.
//
// Concurrency: read-only methods (LogLikelihood, Forward, AccStatistics into
// distinct Stats) may run concurrently; mutators need external locking.
package gmm
