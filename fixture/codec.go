// SPDX-License-Identifier: MIT
// Package: matsets/fixture
//
// codec.go — stream encoding of a matrix.Set.
//
// Contract:
//   - Encode validates every matrix (non-nil, finite) before writing a byte,
//     so a serialization error never leaves a half-written stream behind.
//   - Decode accepts any rectangular matrices; squareness is a property of
//     generated sets, not of the format.

package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/matsets/matrix"
)

// Encode writes set to w as one JSON array.
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, or the writer's error.
func Encode(w io.Writer, set matrix.Set) error {
	if err := validateSet(set); err != nil {
		return fmt.Errorf("%s: %w", methodEncode, err)
	}
	if set == nil {
		set = matrix.Set{}
	}
	if err := json.NewEncoder(w).Encode(set); err != nil {
		return fmt.Errorf("%s: %w", methodEncode, err)
	}

	return nil
}

// Decode reads one JSON array of matrices from r.
// Errors: ErrNotArray for a top-level null, matrix.ErrBadShape for ragged or
// null matrices, rows or cells, ErrTrailingData when anything but whitespace
// follows the array, or the decoder's syntax error.
func Decode(r io.Reader) (matrix.Set, error) {
	var set matrix.Set
	dec := json.NewDecoder(r)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", methodDecode, ErrTrailingData)
	}
	if set == nil {
		return nil, fmt.Errorf("%s: %w", methodDecode, ErrNotArray)
	}
	for i, m := range set {
		if m == nil {
			return nil, fmt.Errorf("%s: matrix %d is null: %w", methodDecode, i, matrix.ErrBadShape)
		}
	}

	return set, nil
}

// validateSet checks every matrix in order and reports the first failure.
func validateSet(set matrix.Set) error {
	for i, m := range set {
		if err := matrix.ValidateFinite(m); err != nil {
			return fmt.Errorf("matrix %d: %w", i, err)
		}
	}

	return nil
}
