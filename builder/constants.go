// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by matrix-set generation.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
	// MethodRandomUniform is the canonical name for the RandomUniform constructor.
	MethodRandomUniform = "RandomUniform"
	// MethodMatrixSet is the canonical name for MatrixSet.
	MethodMatrixSet = "MatrixSet"
	// MethodSideCount is the canonical name for SideCount.
	MethodSideCount = "SideCount"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultSeed is the seed used by the fixture scripts this package replaces.
const DefaultSeed int64 = 42

// DefaultStep is the side-length increment when none is given.
const DefaultStep = 1

// MinSide is the smallest legal side length (an empty 0×0 matrix).
const MinSide = 0

// MaxSetLen is the largest number of matrices one set may hold.
const MaxSetLen = 1 << 16
