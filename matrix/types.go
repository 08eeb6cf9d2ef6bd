// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by builders and fixture codecs.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Set is an ordered sequence of matrices, ordered by generation.
// Generated sets hold square matrices of increasing side length.
type Set []*Dense

// Len returns the number of matrices in the set.
func (s Set) Len() int { return len(s) }

// Sides returns the row count of every matrix in order.
// For generated sets this is the side-length progression.
func (s Set) Sides() []int {
	out := make([]int, len(s))
	for i, m := range s {
		if m != nil {
			out[i] = m.Rows()
		}
	}

	return out
}
