// SPDX-License-Identifier: MIT
// Package: matsets/fixture
//
// describe.go — per-matrix summaries for inspecting fixtures.

package fixture

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/matsets/matrix"
)

// Summary describes one matrix of a set.
// Min, Max, Mean and Frobenius are zero for empty matrices.
type Summary struct {
	Index     int
	Rows      int
	Cols      int
	Square    bool
	Min       float64
	Max       float64
	Mean      float64
	Frobenius float64
}

// Describe summarizes every matrix of set in order.
func Describe(set matrix.Set) ([]Summary, error) {
	out := make([]Summary, 0, len(set))
	for i, m := range set {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("%s: matrix %d: %w", methodDescribe, i, err)
		}
		s := Summary{Index: i, Rows: m.Rows(), Cols: m.Cols(), Square: m.Rows() == m.Cols()}
		if s.Rows == 0 || s.Cols == 0 {
			out = append(out, s)
			continue
		}

		g, err := m.ToGonum()
		if err != nil {
			return nil, fmt.Errorf("%s: matrix %d: %w", methodDescribe, i, err)
		}
		// A fresh gonum Dense is contiguous (stride == cols).
		data := g.RawMatrix().Data
		s.Min = floats.Min(data)
		s.Max = floats.Max(data)
		s.Mean = stat.Mean(data, nil)
		s.Frobenius = mat.Norm(g, 2)
		out = append(out, s)
	}

	return out, nil
}
