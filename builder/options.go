// SPDX-License-Identifier: MIT
// Package: matsets/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/matsets/matrix"
)

// BuilderOption customizes a build by mutating a builderConfig instance
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The same *rand.Rand may be shared by
// several builds to continue one random stream across them.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOnMatrix registers a hook called after every matrix MatrixSet builds.
// Panics on nil.
func WithOnMatrix(fn MatrixHook) BuilderOption {
	if fn == nil {
		panic("builder: WithOnMatrix(nil)")
	}
	return func(c *builderConfig) {
		c.onMatrix = fn
	}
}

// WithMatrixOptions forwards options to matrix.NewDense for every built matrix.
func WithMatrixOptions(opts ...matrix.Option) BuilderOption {
	return func(c *builderConfig) {
		c.matrixOpts = append(c.matrixOpts, opts...)
	}
}
