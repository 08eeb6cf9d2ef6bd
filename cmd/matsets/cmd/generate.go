// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matsets/builder"
	"github.com/katalvlaran/matsets/config"
	"github.com/katalvlaran/matsets/fixture"
	"github.com/katalvlaran/matsets/matrix"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "write seeded sets of random square matrices as JSON fixtures",
	Long: `Generates square matrices with side lengths start, start+step, ... <= end,
filled from U[0,1), and writes them as one JSON array per output file.
With several outputs, each file gets its own set and the files continue one
random stream in the order given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(v, flagConfigFile)
		if err != nil {
			return err
		}
		log = newLogger(cfg.Level())
		return runGenerate(cfg, log, os.Stderr)
	},
}

func init() {
	config.RegisterFlags(generateCmd.Flags())
}

// runGenerate builds and saves one set per output from a single seeded source.
// progressOut receives the progress bars when cfg.Progress is set.
func runGenerate(cfg config.Config, log zerolog.Logger, progressOut io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	total, err := builder.SideCount(cfg.Start, cfg.End, cfg.Step)
	if err != nil {
		return err
	}

	log.Info().
		Int("start", cfg.Start).
		Int("end", cfg.End).
		Int("step", cfg.Step).
		Int64("seed", cfg.Seed).
		Int("matrices_per_file", total).
		Strs("outputs", cfg.Outputs).
		Msg("generating matrix sets")

	for _, path := range cfg.Outputs {
		opts := []builder.BuilderOption{builder.WithRand(rng)}

		var bar *progressbar.ProgressBar
		if cfg.Progress && total > 0 {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(progressOut),
				progressbar.OptionSetDescription(path),
				progressbar.OptionShowCount(),
			)
		}
		opts = append(opts, builder.WithOnMatrix(func(i, _ int, m *matrix.Dense) {
			log.Debug().Str("path", path).Int("index", i).Int("side", m.Rows()).Msg("matrix generated")
			if bar != nil {
				_ = bar.Add(1)
			}
		}))

		set, err := builder.MatrixSet(cfg.Start, cfg.End, cfg.Step, opts...)
		if err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Finish()
			_, _ = io.WriteString(progressOut, "\n")
		}

		if err = fixture.Save(path, set); err != nil {
			return err
		}

		ev := log.Info().Str("path", path).Int("matrices", set.Len())
		if sides := set.Sides(); len(sides) > 0 {
			ev = ev.Int("min_side", sides[0]).Int("max_side", sides[len(sides)-1])
		}
		ev.Msg("matrix set saved")
	}

	return nil
}
