// SPDX-License-Identifier: MIT

// Package matsets generates reproducible benchmark fixtures: sets of square
// matrices of increasing size, filled from U[0,1) and stored as JSON.
//
// Packages:
//
//	matrix/  — Dense row-major matrix, Set, validators, JSON and gonum conversions
//	builder/ — seeded generators: RandomUniform(n) and MatrixSet(start, end, step)
//	fixture/ — Save/Load/Encode/Decode of fixture files, Describe for statistics
//	config/  — run parameters layered from defaults, file, env and flags
//	cmd/matsets — the command-line utility (generate, inspect)
//
// Quick example:
//
//	set, err := builder.MatrixSet(10, 30, 10, builder.WithSeed(42))
//	if err != nil { ... }
//	err = fixture.Save("benches/matrices.json", set) // [[[...10 rows]], [[...20]], [[...30]]]
package matsets
