// SPDX-License-Identifier: MIT

// Package config resolves the parameters of a matrix-set generation run.
//
// Precedence (lowest to highest): Default() → config file → MATSETS_* env →
// explicit command-line flags. Range parameters are never rejected here:
// an empty progression is a legal run that writes an empty array.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matsets/builder"
)

// EnvPrefix prefixes every environment override (MATSETS_START, ...).
const EnvPrefix = "MATSETS"

// Configuration keys; flags use the same names.
const (
	KeyStart    = "start"
	KeyEnd      = "end"
	KeyStep     = "step"
	KeySeed     = "seed"
	KeyOutput   = "output"
	KeyProgress = "progress"
	KeyLogLevel = "log-level"
)

// Defaults reproduce the standard benchmark fixture run.
const (
	DefaultStart    = 10
	DefaultEnd      = 1000
	DefaultStep     = 10
	DefaultOutput   = "./benches/matrices.json"
	DefaultLogLevel = "info"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one generation run. Every path in Outputs receives its own set,
// generated in order from one shared random stream.
type Config struct {
	Start    int
	End      int
	Step     int
	Seed     int64
	Outputs  []string
	Progress bool
	LogLevel string
}

// Default returns the configuration of the standard single-file run.
func Default() Config {
	return Config{
		Start:    DefaultStart,
		End:      DefaultEnd,
		Step:     DefaultStep,
		Seed:     builder.DefaultSeed,
		Outputs:  []string{DefaultOutput},
		LogLevel: DefaultLogLevel,
	}
}

// NewViper returns a viper instance with defaults and env overrides wired.
// Env keys replace '-' with '_' (log-level → MATSETS_LOG_LEVEL). List values
// from the environment are whitespace-separated.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyStart, d.Start)
	v.SetDefault(KeyEnd, d.End)
	v.SetDefault(KeyStep, d.Step)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyOutput, d.Outputs)
	v.SetDefault(KeyProgress, d.Progress)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags declares the generation flags on fs with the default values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(KeyStart, d.Start, "side length of the first matrix")
	fs.Int(KeyEnd, d.End, "largest allowed side length (inclusive)")
	fs.Int(KeyStep, d.Step, "side length increment")
	fs.Int64(KeySeed, d.Seed, "seed of the shared random source")
	fs.StringSliceP(KeyOutput, "o", d.Outputs, "output file; repeat to write several sets from one random stream")
	fs.Bool(KeyProgress, d.Progress, "show a progress bar on stderr")
}

// RegisterLogFlags declares the log level flag. Kept apart from RegisterFlags
// so it can live on a root command's persistent flags.
func RegisterLogFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
}

// Load resolves a Config from v, reading file first when it is non-empty,
// and validates the result.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		Start:    v.GetInt(KeyStart),
		End:      v.GetInt(KeyEnd),
		Step:     v.GetInt(KeyStep),
		Seed:     v.GetInt64(KeySeed),
		Outputs:  v.GetStringSlice(KeyOutput),
		Progress: v.GetBool(KeyProgress),
		LogLevel: v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every problem at once. Each one wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var result *multierror.Error

	if len(c.Outputs) == 0 {
		result = multierror.Append(result, fmt.Errorf("no output file: %w", ErrInvalidConfig))
	}
	seen := make(map[string]int, len(c.Outputs))
	for i, p := range c.Outputs {
		if strings.TrimSpace(p) == "" {
			result = multierror.Append(result, fmt.Errorf("output %d is empty: %w", i, ErrInvalidConfig))
			continue
		}
		if j, dup := seen[p]; dup {
			result = multierror.Append(result, fmt.Errorf("output %d repeats output %d (%s): %w", i, j, p, ErrInvalidConfig))
			continue
		}
		seen[p] = i
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log level %q: %v: %w", c.LogLevel, err, ErrInvalidConfig))
	}

	return result.ErrorOrNil()
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}
