// SPDX-License-Identifier: MIT
// Package: matsets/fixture
//
// file.go — one-shot fixture files.
//
// Save creates or truncates the target and writes through a buffered writer.
// The handle is closed on every path. There is no temp-file/rename step: a
// failed write may leave a truncated file.

package fixture

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/matsets/matrix"
)

// Save writes set to path as one JSON document, overwriting any existing file.
// Errors: matrix.ErrNaNInf/ErrNilMatrix (checked before the file is touched),
// or the filesystem error (e.g. missing parent directory) wrapped with the path.
func Save(path string, set matrix.Set) (err error) {
	if err = validateSet(set); err != nil {
		return fmt.Errorf("%s(%s): %w", methodSave, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: could not create fixture file: %w", methodSave, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s(%s): close: %w", methodSave, path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err = Encode(w, set); err != nil {
		return fmt.Errorf("%s(%s): %w", methodSave, path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%s(%s): flush: %w", methodSave, path, err)
	}

	return nil
}

// Load reads a fixture file written by Save (or any compatible producer).
func Load(path string) (matrix.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: could not open fixture file: %w", methodLoad, err)
	}
	defer f.Close()

	set, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", methodLoad, path, err)
	}

	return set, nil
}
