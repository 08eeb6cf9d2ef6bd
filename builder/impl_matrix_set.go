// SPDX-License-Identifier: MIT
// Package: matsets/builder
//
// impl_matrix_set.go - MatrixSet(start, end, step): the fixture generator.
//
// Contract:
//   - Sides follow SideLengths(start, end, step); an empty progression returns
//     an empty set and no error, even without an RNG.
//   - A negative first side fails with ErrBadSize before the sides are
//     materialized; so does a progression longer than MaxSetLen.
//   - A nil RNG fails with ErrNeedRandSource before any allocation.
//   - The full set is built before returning (no lazy iteration); on error no
//     partial set is returned.
//   - cfg.onMatrix, if set, is called once per matrix in build order.
//
// Determinism:
//   - Matrices are built in ascending side order from the one shared RNG, so a
//     fixed seed and range reproduce the set exactly.

package builder

import (
	"fmt"

	"github.com/katalvlaran/matsets/matrix"
)

// MatrixSet generates square matrices with side lengths start, start+step,
// ... not exceeding end, each filled from U[0,1).
func MatrixSet(start, end, step int, opts ...BuilderOption) (matrix.Set, error) {
	count, err := SideCount(start, end, step)
	if err == nil && count == 0 {
		return matrix.Set{}, nil
	}
	if start < MinSide {
		return nil, fmt.Errorf("%s(%d,%d,%d): side %d < min=%d: %w",
			MethodMatrixSet, start, end, step, start, MinSide, ErrBadSize)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodMatrixSet, err)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s(%d,%d,%d): rng is required: %w",
			MethodMatrixSet, start, end, step, ErrNeedRandSource)
	}

	sides := SideLengths(start, end, step)
	set := make(matrix.Set, 0, len(sides))
	for i, n := range sides {
		m, err := RandomUniform(n)(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: matrix %d (side %d): %w", MethodMatrixSet, i, n, err)
		}
		set = append(set, m)
		if cfg.onMatrix != nil {
			cfg.onMatrix(i, len(sides), m)
		}
	}

	return set, nil
}
