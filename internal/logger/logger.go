// Package logger builds the zerolog loggers used by the benchmark tooling.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	LogLevelFlag  = "loglevel"
	LogFormatFlag = "log-format"

	consoleTimeFormat = time.RFC3339
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// Config selects the minimum level and the output format.
type Config struct {
	MinLevel string
	// JSON writes one JSON object per event instead of console lines.
	JSON bool
	// Out defaults to stderr.
	Out io.Writer
}

// Create returns a logger for cfg. An unparsable level falls back to info and
// is reported through the new logger.
func Create(cfg Config) *zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = consoleWriter(out)
	}

	level, levelErr := zerolog.ParseLevel(cfg.MinLevel)
	if levelErr != nil || cfg.MinLevel == "" {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if levelErr != nil {
		log.Error().Msgf("Failed to parse log level %q, using %q instead", cfg.MinLevel, level)
	}
	return &log
}

func consoleWriter(out io.Writer) io.Writer {
	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
		out = colorable.NewColorable(f)
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: consoleTimeFormat,
	}
}
