// SPDX-License-Identifier: MIT

// Package matrix: JSON form of Dense.
//
// A Dense encodes as nested rows ([[...],[...]]), row-major, with no metadata.
// The side length is implied by the array dimensions. 0×0 encodes as [].

package matrix

import (
	"encoding/json"
	"fmt"
)

const (
	ctxMarshal   = "MarshalJSON"
	ctxUnmarshal = "UnmarshalJSON"
)

var (
	_ json.Marshaler   = (*Dense)(nil)
	_ json.Unmarshaler = (*Dense)(nil)
)

// MarshalJSON encodes m as nested rows. Non-finite values fail with ErrNaNInf
// (JSON has no representation for them).
func (m *Dense) MarshalJSON() ([]byte, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(ctxMarshal, err)
	}

	return json.Marshal(m.ToRows())
}

// UnmarshalJSON decodes nested rows into m, replacing its shape and data.
// Ragged rows and null matrices, rows or cells fail with ErrBadShape.
// The numeric guard is reset to the default.
func (m *Dense) UnmarshalJSON(b []byte) error {
	var raw [][]*float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%s: %w", ctxUnmarshal, err)
	}
	if raw == nil {
		return fmt.Errorf("%s: null matrix: %w", ctxUnmarshal, ErrBadShape)
	}

	rows := make([][]float64, len(raw))
	for i, row := range raw {
		if row == nil {
			return fmt.Errorf("%s: row %d is null: %w", ctxUnmarshal, i, ErrBadShape)
		}
		rows[i] = make([]float64, len(row))
		for j, p := range row {
			if p == nil {
				return fmt.Errorf("%s: cell (%d,%d) is null: %w", ctxUnmarshal, i, j, ErrBadShape)
			}
			rows[i][j] = *p
		}
	}
	d, err := FromRows(rows)
	if err != nil {
		return matrixErrorf(ctxUnmarshal, err)
	}
	*m = *d

	return nil
}
