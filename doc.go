// Package gaussmix evaluates Gaussian Mixture Models (GMMs) with diagonal
// covariances and accumulates the sufficient statistics an EM trainer needs,
// in the log domain so high-dimensional features never underflow.
//
// 🚀 What is inside?
//
//	logmath/  : LogZero, LogAdd, LogSumExp, SafeLog
//	gaussian/ : diagonal Gaussian component with variance flooring
//	gmm/      : Machine (weights + components), Stats, Scorer
//	sampler/  : indexed datasets: slices, labeled frames, gonum matrices
//	store/    : hierarchical key/value document; JSON, YAML or TOML,
//	            optionally gzip or zstd compressed
//	config/   : GAUSSMIX_* environment configuration
//	logging/  : zap logger construction
//
// ✨ Typical flow
//
//	m, _ := gmm.NewMachine(8, 39)             // K components over D inputs
//	stats, _ := gmm.NewStats(8, 39)
//	_ = m.AccStatisticsSampler(frames, stats) // E-step over a dataset
//	// ... M-step: re-estimate weights, means, variances from stats ...
//	_ = m.SaveFile("speaker.gmm.json.gz")
//	score, _ := m.Forward(sampler.Frame{Features: x})
//
// Initialisation (k-means or otherwise) and convergence policy are left to
// the caller; examples/ shows a complete EM loop.
//
//	go get github.com/katalvlaran/gaussmix
package gaussmix
