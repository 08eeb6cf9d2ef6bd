// SPDX-License-Identifier: MIT

// Package matrix: conversions between Dense and nested rows / gonum.
//
// Nested rows ([][]float64, row-major) are the shape used by the JSON fixture
// codec. gonum's *mat.Dense is the hand-off type for numeric consumers.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromRows = "FromRows"
	ctxToGonum  = "ToGonum"
	ctxFromGo   = "FromGonum"
)

// FromRows builds a Dense from nested rows, copying the data.
// All rows must share the same length (ErrBadShape otherwise). An empty
// slice yields a 0×0 matrix. Under the numeric guard, non-finite cells are
// rejected with ErrNaNInf.
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			v := rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToRows returns a nested-row copy of m (one slice per row).
// A 0×0 matrix yields a non-nil empty slice so it encodes as [] rather than null.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// ToGonum copies m into a gonum *mat.Dense.
// gonum has no empty dense matrix, so 0-sized inputs fail with ErrInvalidDimensions.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxToGonum, m.r, m.c, ErrInvalidDimensions)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a Dense.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(ctxFromGo, ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGo, err)
	}
	err = m.Apply(func(i, j int, _ float64) float64 { return src.At(i, j) })
	if err != nil {
		return nil, matrixErrorf(ctxFromGo, err)
	}

	return m, nil
}
