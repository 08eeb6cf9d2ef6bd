// SPDX-License-Identifier: MIT
// Package: matsets/builder
//
// api.go — public entry points.
//
// Constructor is the unit of work: a closure capturing its parameters that
// receives the resolved builderConfig and returns a freshly built matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/matsets/matrix"
)

// Constructor builds one matrix from a resolved configuration.
type Constructor func(cfg builderConfig) (*matrix.Dense, error)

// Build resolves opts and runs a single constructor.
//
//	m, err := builder.Build(builder.RandomUniform(64), builder.WithSeed(7))
func Build(con Constructor, opts ...BuilderOption) (*matrix.Dense, error) {
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuild, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	m, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return m, nil
}
