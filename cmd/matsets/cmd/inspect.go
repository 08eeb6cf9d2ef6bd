// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matsets/fixture"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "load a fixture and log per-matrix statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		_, err := runInspect(args[0], log)
		return err
	},
}

// runInspect loads path, logs one line per matrix and returns the summaries.
func runInspect(path string, log zerolog.Logger) ([]fixture.Summary, error) {
	set, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	sums, err := fixture.Describe(set)
	if err != nil {
		return nil, err
	}

	nonSquare := 0
	for _, s := range sums {
		if !s.Square {
			nonSquare++
		}
		log.Info().
			Int("index", s.Index).
			Int("rows", s.Rows).
			Int("cols", s.Cols).
			Float64("min", s.Min).
			Float64("max", s.Max).
			Float64("mean", s.Mean).
			Float64("frobenius", s.Frobenius).
			Msg("matrix")
	}

	ev := log.Info()
	if nonSquare > 0 {
		ev = log.Warn()
	}
	ev.Str("path", path).Int("matrices", len(sums)).Int("non_square", nonSquare).Msg("fixture inspected")

	return sums, nil
}
