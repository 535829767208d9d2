// Package config loads the benchmark configuration file.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/KarpelesLab/kyber"
)

var (
	ErrUnknownLevel  = errors.New("unknown security level")
	ErrNoIterations  = errors.New("iterations must be positive")
	ErrNegativeTick  = errors.New("tick period must not be negative")
	ErrEmptyFilename = errors.New("config file name is empty")
	ErrUnknownClock  = errors.New("unknown clock")
	ErrUnknownFormat = errors.New("unknown log format")
)

// Clock sources.
const (
	ClockMonotonic = "monotonic"
	ClockTicker    = "ticker"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config drives one benchmark run.
type Config struct {
	Level       string        `yaml:"level"`
	Iterations  int           `yaml:"iterations"`
	RNGSeed     uint64        `yaml:"rng-seed"`
	Tick        time.Duration `yaml:"tick"`
	Clock       string        `yaml:"clock"`
	Chart       string        `yaml:"chart"`
	MetricsAddr string        `yaml:"metrics-addr"`
	LogLevel    string        `yaml:"log-level"`
	LogFormat   string        `yaml:"log-format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Level:      "512",
		Iterations: 1000,
		RNGSeed:    2,
		Tick:       time.Millisecond,
		Clock:      ClockMonotonic,
		LogLevel:   "info",
		LogFormat:  LogFormatConsole,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(filename string) (Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, ErrEmptyFilename
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "cannot read config file %s", filename)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "cannot parse config file %s", filename)
	}
	return cfg, nil
}

// Validate checks cfg and returns the parameter set it names.
func (c Config) Validate() (*kyber.Params, error) {
	params := kyber.ParamsByName(c.Level)
	if params == nil {
		return nil, errors.Wrapf(ErrUnknownLevel, "%q", c.Level)
	}
	if c.Iterations <= 0 {
		return nil, ErrNoIterations
	}
	if c.Tick < 0 {
		return nil, ErrNegativeTick
	}
	switch c.Clock {
	case ClockMonotonic, ClockTicker:
	default:
		return nil, errors.Wrapf(ErrUnknownClock, "%q", c.Clock)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", c.LogFormat)
	}
	return params, nil
}
