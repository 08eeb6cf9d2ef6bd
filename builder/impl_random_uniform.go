// SPDX-License-Identifier: MIT
// Package: matsets/builder
//
// impl_random_uniform.go - implementation of RandomUniform(n) constructor.
//
// Contract:
//   - n ≥ MinSide (else ErrBadSize). n == 0 yields an empty 0×0 matrix.
//   - cfg.rng must be non-nil when n > 0 (else ErrNeedRandSource).
//   - Each entry is an independent rng.Float64() draw, so it lies in [0,1).
//
// Determinism:
//   - Stable fill order: i asc, then j asc (row-major), one draw per cell.
//   - Exactly n*n draws are consumed from cfg.rng.
//
// Complexity:
//   - Time: O(n²). Space: O(n²) for the result.

package builder

import (
	"fmt"

	"github.com/katalvlaran/matsets/matrix"
)

// RandomUniform returns a Constructor that samples an n×n matrix with
// entries drawn independently from U[0,1).
func RandomUniform(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		// Validate the side length first (fail fast, no RNG consumed).
		if n < MinSide {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomUniform, n, MinSide, ErrBadSize)
		}
		if cfg.rng == nil && n > 0 {
			return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomUniform, ErrNeedRandSource)
		}

		m, err := matrix.NewSquare(n, cfg.matrixOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomUniform, err)
		}

		rng := cfg.rng
		if err = m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomUniform, err)
		}

		return m, nil
	}
}
