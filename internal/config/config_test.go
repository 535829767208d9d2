package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/KarpelesLab/kyber"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestLoad(t *testing.T) {
	name := writeFile(t, `
level: "1024"
iterations: 50
rng-seed: 9
tick: 250us
clock: ticker
chart: out.html
log-format: json
`)
	cfg, err := Load(name)
	require.NoError(t, err)
	require.Equal(t, "1024", cfg.Level)
	require.Equal(t, 50, cfg.Iterations)
	require.Equal(t, uint64(9), cfg.RNGSeed)
	require.Equal(t, 250*time.Microsecond, cfg.Tick)
	require.Equal(t, "out.html", cfg.Chart)
	require.Equal(t, ClockTicker, cfg.Clock)
	require.Equal(t, LogFormatJSON, cfg.LogFormat)
	// Untouched fields keep their defaults
	require.Equal(t, "info", cfg.LogLevel)

	params, err := cfg.Validate()
	require.NoError(t, err)
	require.Same(t, kyber.Kyber1024, params)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	require.ErrorIs(t, err, ErrEmptyFilename)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))

	_, err = Load(writeFile(t, "iterations: [1, 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot parse config file")
}

func TestValidate(t *testing.T) {
	params, err := Default().Validate()
	require.NoError(t, err)
	require.Same(t, kyber.Kyber512, params)

	cfg := Default()
	cfg.Level = "2048"
	_, err = cfg.Validate()
	require.ErrorIs(t, err, ErrUnknownLevel)

	cfg = Default()
	cfg.Iterations = 0
	_, err = cfg.Validate()
	require.ErrorIs(t, err, ErrNoIterations)

	cfg = Default()
	cfg.Tick = -time.Second
	_, err = cfg.Validate()
	require.ErrorIs(t, err, ErrNegativeTick)

	cfg = Default()
	cfg.Clock = "sundial"
	_, err = cfg.Validate()
	require.ErrorIs(t, err, ErrUnknownClock)

	cfg = Default()
	cfg.LogFormat = "xml"
	_, err = cfg.Validate()
	require.ErrorIs(t, err, ErrUnknownFormat)
}
