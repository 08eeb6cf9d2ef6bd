package fixture_test

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matsets/builder"
	"github.com/katalvlaran/matsets/fixture"
	"github.com/katalvlaran/matsets/matrix"
)

// mustSet generates a seeded set or fails the test.
func mustSet(t *testing.T, start, end, step int) matrix.Set {
	t.Helper()
	set, err := builder.MatrixSet(start, end, step, builder.WithSeed(builder.DefaultSeed))
	require.NoError(t, err)

	return set
}

// TestSaveScenario: MatrixSet(10, 30, 10) saved is an array of 3 square matrices.
func TestSaveScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrices.json")
	require.NoError(t, fixture.Save(path, mustSet(t, 10, 30, 10)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc [][][]float64
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc, 3)
	for i, want := range []int{10, 20, 30} {
		require.Len(t, doc[i], want)
		for _, row := range doc[i] {
			require.Len(t, row, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	set := mustSet(t, 1, 9, 4)
	path := filepath.Join(t.TempDir(), "rt.json")
	require.NoError(t, fixture.Save(path, set))

	back, err := fixture.Load(path)
	require.NoError(t, err)
	require.Equal(t, set.Sides(), back.Sides())
	for i := range set {
		// Go's float formatting is shortest round-trip, so values are exact.
		require.Equal(t, set[i].ToRows(), back[i].ToRows())
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644))

	require.NoError(t, fixture.Save(path, matrix.Set{}))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestSaveEmptyAndZeroSide(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixture.Encode(&buf, nil))
	require.Equal(t, "[]", strings.TrimSpace(buf.String()))

	buf.Reset()
	require.NoError(t, fixture.Encode(&buf, mustSet(t, 0, 1, 1)))
	var doc [][][]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc, 2)
	require.Len(t, doc[0], 0)
	require.Len(t, doc[1], 1)
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "m.json")
	err := fixture.Save(path, mustSet(t, 1, 2, 1))
	require.ErrorIs(t, err, fs.ErrNotExist)

	var perr *fs.PathError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, path, perr.Path)
}

func TestSaveNonFinite(t *testing.T) {
	bad, err := matrix.NewSquare(2, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, bad.Set(1, 1, math.NaN()))

	path := filepath.Join(t.TempDir(), "bad.json")
	err = fixture.Save(path, matrix.Set{bad})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Validation runs before the file is created.
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, fs.ErrNotExist)

	require.ErrorIs(t, fixture.Save(path, matrix.Set{nil}), matrix.ErrNilMatrix)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"null document", `null`, fixture.ErrNotArray},
		{"null matrix", `[null]`, matrix.ErrBadShape},
		{"ragged", `[[[1,2],[3]]]`, matrix.ErrBadShape},
		{"null cell", `[[[null]]]`, matrix.ErrBadShape},
		{"null row", `[[[1],null]]`, matrix.ErrBadShape},
		{"trailing garbage", `[] garbage`, fixture.ErrTrailingData},
		{"second document", "[[[1]]]\n[]", fixture.ErrTrailingData},
		{"stray bracket", `[]]`, fixture.ErrTrailingData},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixture.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := fixture.Decode(strings.NewReader(`[[[1]`))
	require.Error(t, err)
}

func TestDecodeTrailingWhitespace(t *testing.T) {
	set, err := fixture.Decode(strings.NewReader("[[[0.5]]]\n\t \n"))
	require.NoError(t, err)
	require.Equal(t, []int{1}, set.Sides())
}

func TestDecodeRectangular(t *testing.T) {
	set, err := fixture.Decode(strings.NewReader(`[[[1,2,3]],[]]`))
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	require.Equal(t, 3, set[0].Cols())
	require.Equal(t, 0, set[1].Rows())
}

func TestLoadMissing(t *testing.T) {
	_, err := fixture.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
