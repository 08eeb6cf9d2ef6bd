// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matsets/config"
)

var (
	flagConfigFile string
	log            zerolog.Logger
	v              *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:           "matsets",
	Short:         "Generate and inspect random square-matrix benchmark fixtures",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		v = config.NewViper()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		cfg := config.Config{LogLevel: v.GetString(config.KeyLogLevel)}
		log = newLogger(cfg.Level())
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("matsets failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigFile, "config", "c", "",
		"optional config file (yaml, json or toml)")
	config.RegisterLogFlags(rootCmd.PersistentFlags())

	log = newLogger(zerolog.InfoLevel)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
}

func newLogger(lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
