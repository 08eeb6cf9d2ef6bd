package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matsets/config"
)

// load parses args into a fresh flag set bound to a fresh viper.
func load(t *testing.T, file string, args ...string) (config.Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	config.RegisterLogFlags(fs)
	require.NoError(t, fs.Parse(args))

	v := config.NewViper()
	require.NoError(t, v.BindPFlags(fs))

	return config.Load(v, file)
}

func TestDefault(t *testing.T) {
	cfg, err := load(t, "")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, 10, cfg.Start)
	require.Equal(t, 1000, cfg.End)
	require.Equal(t, 10, cfg.Step)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, []string{"./benches/matrices.json"}, cfg.Outputs)
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestFlagsOverride(t *testing.T) {
	cfg, err := load(t, "",
		"--start", "1", "--end", "5", "--step", "2", "--seed", "7",
		"-o", "a.json", "--output", "b.json", "--progress", "--log-level", "debug")
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Start: 1, End: 5, Step: 2, Seed: 7,
		Outputs:  []string{"a.json", "b.json"},
		Progress: true,
		LogLevel: "debug",
	}, cfg)
	require.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MATSETS_SEED", "99")
	t.Setenv("MATSETS_LOG_LEVEL", "warn")

	cfg, err := load(t, "")
	require.NoError(t, err)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, "warn", cfg.LogLevel)

	// Explicit flags still win.
	cfg, err = load(t, "", "--seed", "3")
	require.NoError(t, err)
	require.Equal(t, int64(3), cfg.Seed)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "matsets.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"start: 2\nend: 8\nstep: 3\noutput:\n  - one.json\n  - two.json\n"), 0o644))

	cfg, err := load(t, file)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Start)
	require.Equal(t, 8, cfg.End)
	require.Equal(t, 3, cfg.Step)
	require.Equal(t, []string{"one.json", "two.json"}, cfg.Outputs)

	cfg, err = load(t, file, "--end", "20")
	require.NoError(t, err)
	require.Equal(t, 20, cfg.End)

	_, err = load(t, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.Default().Validate())

	// Empty ranges are legal.
	c := config.Default()
	c.Start, c.End, c.Step = 5, 1, 0
	require.NoError(t, c.Validate())

	bad := config.Config{Outputs: []string{"a.json", " ", "a.json"}, LogLevel: "loud"}
	err := bad.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 3)

	err = config.Config{LogLevel: "info"}.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
