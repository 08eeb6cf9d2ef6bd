// SPDX-License-Identifier: MIT

// Package fixture writes and reads matrix-set benchmark fixtures.
//
// A fixture is one UTF-8 JSON document: a top-level array with one element
// per matrix, in set order, each element an array of rows. There is no
// envelope and no metadata; side lengths are read off the dimensions.
//
//	set, _ := builder.MatrixSet(10, 30, 10, builder.WithSeed(42))
//	_ = fixture.Save("benches/matrices.json", set)
//	back, _ := fixture.Load("benches/matrices.json")
package fixture
