// SPDX-License-Identifier: MIT

// Package builder generates matrix sets for benchmark fixtures.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the random source, the per-matrix hook and the
//     numeric policy handed to matrix.NewDense.
//   - Constructors:
//     – RandomUniform(n): an n×n matrix with entries drawn from U[0,1).
//   - Set generation:
//     – SideLengths(start, end, step): the arithmetic progression of sides.
//     – MatrixSet(start, end, step, opts...): one RandomUniform per side.
//
// Guarantees:
//
//   - No hidden globals: the random source is supplied through WithSeed or
//     WithRand and consumed sequentially, so a fixed seed reproduces the same
//     set bit for bit.
//   - Invalid ranges (start > end, step <= 0) yield an empty set, never an error.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     runtime failures are sentinel errors (ErrBadSize, ErrNeedRandSource).
package builder
