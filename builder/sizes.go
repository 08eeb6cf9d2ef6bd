// SPDX-License-Identifier: MIT
// Package: matsets/builder
//
// sizes.go — side-length progression for matrix sets.

package builder

import "fmt"

// SideCount returns how many sides SideLengths(start, end, step) yields.
//
// Contract:
//   - start > end or step <= 0 yields 0 and no error.
//   - Otherwise the count is (end-start)/step + 1, computed on the unsigned
//     difference so it is exact for any start and end.
//   - A count above MaxSetLen fails with ErrBadSize.
//
// Complexity: O(1).
func SideCount(start, end, step int) (int, error) {
	if step <= 0 || start > end {
		return 0, nil
	}
	q := (uint(end) - uint(start)) / uint(step)
	if q >= MaxSetLen {
		return 0, fmt.Errorf("%s(%d,%d,%d): more than %d sides: %w",
			MethodSideCount, start, end, step, MaxSetLen, ErrBadSize)
	}

	return int(q) + 1, nil
}

// SideLengths returns start, start+step, start+2*step, ... not exceeding end.
//
// Contract:
//   - start > end or step <= 0 yields an empty (non-nil) slice.
//   - Otherwise the length is SideCount(start, end, step) and element i is
//     start+i*step.
//   - Panics with the SideCount error when the progression is longer than
//     MaxSetLen; check SideCount first for untrusted ranges.
//
// Complexity: O(k) for k returned sides.
func SideLengths(start, end, step int) []int {
	count, err := SideCount(start, end, step)
	if err != nil {
		panic(err)
	}

	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = start + i*step
	}

	return out
}
