package builder_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/matsets/builder"
)

// TestPropertySetShape: length = (end-start)/step + 1 and side i = start + i*step.
func TestPropertySetShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(0, 12).Draw(t, "start")
		end := rapid.IntRange(start, start+20).Draw(t, "end")
		step := rapid.IntRange(1, 6).Draw(t, "step")
		seed := rapid.Int64().Draw(t, "seed")

		set, err := builder.MatrixSet(start, end, step, builder.WithSeed(seed))
		if err != nil {
			t.Fatalf("MatrixSet: %v", err)
		}
		if want := (end-start)/step + 1; set.Len() != want {
			t.Fatalf("len=%d, want %d", set.Len(), want)
		}
		for i, m := range set {
			if m.Rows() != start+i*step || m.Cols() != m.Rows() {
				t.Fatalf("matrix %d is %dx%d, want side %d", i, m.Rows(), m.Cols(), start+i*step)
			}
			m.Do(func(r, c int, v float64) bool {
				if v < 0 || v >= 1 {
					t.Fatalf("matrix %d (%d,%d)=%v outside [0,1)", i, r, c, v)
				}
				return true
			})
		}
	})
}

// TestPropertyEmptyRanges: start > end or step <= 0 never errors and is empty.
func TestPropertyEmptyRanges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(-50, 50).Draw(t, "start")
		end := rapid.IntRange(-50, 50).Draw(t, "end")
		step := rapid.IntRange(-5, 5).Draw(t, "step")
		if start <= end && step > 0 {
			t.Skip("valid range")
		}

		set, err := builder.MatrixSet(start, end, step)
		if err != nil || set.Len() != 0 {
			t.Fatalf("MatrixSet(%d,%d,%d) = %d matrices, err=%v", start, end, step, set.Len(), err)
		}
	})
}

// TestPropertyDeterminism: the same seed and range give bit-identical sets.
func TestPropertyDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(0, 6).Draw(t, "start")
		end := rapid.IntRange(start, start+8).Draw(t, "end")
		seed := rapid.Int64().Draw(t, "seed")

		a, errA := builder.MatrixSet(start, end, 1, builder.WithSeed(seed))
		b, errB := builder.MatrixSet(start, end, 1, builder.WithSeed(seed))
		if errA != nil || errB != nil {
			t.Fatalf("errors: %v, %v", errA, errB)
		}
		for i := range a {
			ra, rb := a[i].ToRows(), b[i].ToRows()
			for r := range ra {
				for c := range ra[r] {
					if ra[r][c] != rb[r][c] {
						t.Fatalf("matrix %d differs at (%d,%d)", i, r, c)
					}
				}
			}
		}
	})
}
