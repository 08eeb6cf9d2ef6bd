// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used by matrix-set fixtures.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set and an optional
//     finite-value guard (NaN/±Inf rejected by default).
//   - Set, an ordered sequence of matrices as produced by the builder package.
//   - Conversions to and from nested rows ([][]float64), the shape used by the
//     JSON fixture codec, and to gonum's *mat.Dense for numeric consumers.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite).
//
// Errors are package-level sentinels; match them with errors.Is.
package matrix
