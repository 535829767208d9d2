package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCreateLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Create(Config{MinLevel: "warn", JSON: true, Out: &buf})
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	log.Warn().Str("stage", "ntt").Msg("shown")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "ntt", entry["stage"])
	require.Contains(t, entry, "time")
}

func TestCreateConsole(t *testing.T) {
	var buf bytes.Buffer
	log := Create(Config{MinLevel: "debug", Out: &buf})
	log.Debug().Int("iteration", 3).Msg("Iteration done")
	out := buf.String()
	require.Contains(t, out, "DBG")
	require.Contains(t, out, "Iteration done")
	require.Contains(t, out, "iteration=3")
	// A buffer is not a terminal
	require.NotContains(t, out, "\x1b[")
}

func TestCreateBadLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Create(Config{MinLevel: "loud", JSON: true, Out: &buf})
	require.Equal(t, zerolog.InfoLevel, log.GetLevel())
	require.Contains(t, buf.String(), "Failed to parse log level")
}

func TestCreateDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Create(Config{JSON: true, Out: &buf})
	require.Equal(t, zerolog.InfoLevel, log.GetLevel())
	require.Zero(t, buf.Len())
}
