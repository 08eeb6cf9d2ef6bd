// SPDX-License-Identifier: MIT
// Package: matsets/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng        = nil   (stochastic constructors fail with ErrNeedRandSource)
//   • onMatrix   = nil   (no progress reporting)
//   • matrixOpts = none  (matrix package defaults; NaN/Inf guard on)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/matsets/matrix"
)

// MatrixHook observes each matrix right after it is built.
// index is zero-based; total is the number of matrices the call will build.
type MatrixHook func(index, total int, m *matrix.Dense)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Optional per-matrix observer for MatrixSet.
	onMatrix MatrixHook
	// Options forwarded to matrix.NewDense.
	matrixOpts []matrix.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
