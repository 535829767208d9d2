package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/KarpelesLab/kyber"
	"github.com/KarpelesLab/kyber/internal/bench"
	"github.com/KarpelesLab/kyber/internal/clock"
	"github.com/KarpelesLab/kyber/internal/config"
	"github.com/KarpelesLab/kyber/internal/logger"
)

const (
	configFlag      = "config"
	levelFlag       = "level"
	iterationsFlag  = "iterations"
	rngSeedFlag     = "rng-seed"
	tickFlag        = "tick"
	chartFlag       = "chart"
	metricsAddrFlag = "metrics-addr"
	clockFlag       = "clock"

	shutdownTimeout = 5 * time.Second
)

func flags() []cli.Flag {
	def := config.Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:  configFlag,
			Usage: "YAML configuration file; flags given on the command line override it",
		},
		&cli.StringFlag{
			Name:  levelFlag,
			Usage: "Security level: 512, 768 or 1024",
			Value: def.Level,
		},
		&cli.IntFlag{
			Name:    iterationsFlag,
			Aliases: []string{"n"},
			Usage:   "Number of round trips",
			Value:   def.Iterations,
		},
		&cli.Uint64Flag{
			Name:  rngSeedFlag,
			Usage: "Start value of the deterministic counter byte source",
			Value: def.RNGSeed,
		},
		&cli.DurationFlag{
			Name:  tickFlag,
			Usage: "Tick period of the tick-counter clock",
			Value: def.Tick,
		},
		&cli.StringFlag{
			Name:  clockFlag,
			Usage: "Time source: monotonic (nanosecond ticks) or ticker (periodic tick counter)",
			Value: def.Clock,
		},
		&cli.StringFlag{
			Name:  chartFlag,
			Usage: "Write an HTML chart of the per-iteration timings to this file",
		},
		&cli.StringFlag{
			Name:  metricsAddrFlag,
			Usage: "Serve prometheus metrics on this address while the benchmark runs",
		},
		&cli.StringFlag{
			Name:  logger.LogLevelFlag,
			Usage: "Application logging level {debug, info, warn, error}",
			Value: def.LogLevel,
		},
		&cli.StringFlag{
			Name:  logger.LogFormatFlag,
			Usage: "Log output format {console, json}",
			Value: def.LogFormat,
		},
	}
}

// loadConfig reads the config file, if any, and applies the flags set on
// the command line on top of it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if name := c.String(configFlag); name != "" {
		var err error
		if cfg, err = config.Load(name); err != nil {
			return cfg, err
		}
	}
	if c.IsSet(levelFlag) {
		cfg.Level = c.String(levelFlag)
	}
	if c.IsSet(iterationsFlag) {
		cfg.Iterations = c.Int(iterationsFlag)
	}
	if c.IsSet(rngSeedFlag) {
		cfg.RNGSeed = c.Uint64(rngSeedFlag)
	}
	if c.IsSet(tickFlag) {
		cfg.Tick = c.Duration(tickFlag)
	}
	if c.IsSet(chartFlag) {
		cfg.Chart = c.String(chartFlag)
	}
	if c.IsSet(metricsAddrFlag) {
		cfg.MetricsAddr = c.String(metricsAddrFlag)
	}
	if c.IsSet(clockFlag) {
		cfg.Clock = c.String(clockFlag)
	}
	if c.IsSet(logger.LogLevelFlag) {
		cfg.LogLevel = c.String(logger.LogLevelFlag)
	}
	if c.IsSet(logger.LogFormatFlag) {
		cfg.LogFormat = c.String(logger.LogFormatFlag)
	}
	return cfg, nil
}

func action(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logger.Create(logger.Config{
		MinLevel: cfg.LogLevel,
		JSON:     cfg.LogFormat == config.LogFormatJSON,
		Out:      c.App.ErrWriter,
	})
	params, err := cfg.Validate()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	if err != nil {
		return errors.Wrap(err, "cannot register metrics")
	}

	h := &bench.Harness{
		Params:  params,
		Rand:    kyber.NewCounterSource(cfg.RNGSeed),
		Log:     log,
		Metrics: metrics,
	}

	g, ctx := errgroup.WithContext(ctx)
	switch cfg.Clock {
	case config.ClockMonotonic:
		h.Clock = clock.NewMonotonic()
	case config.ClockTicker:
		tc := clock.NewTickCounter(cfg.Tick)
		h.Clock = tc
		h.TickDuration = tc.Period()
		tickCtx, stopTicks := context.WithCancel(ctx)
		defer stopTicks()
		go tc.Run(tickCtx)
	}

	g.Go(func() error {
		return runBench(ctx, h, cfg, log)
	})
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(ctx, cfg.MetricsAddr, reg, log)
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "benchmark failed")
	}
	return nil
}

func runBench(ctx context.Context, h *bench.Harness, cfg config.Config, log *zerolog.Logger) error {
	report, err := h.Run(ctx, cfg.Iterations)
	if err != nil {
		return err
	}
	if report.Mismatches > 0 {
		log.Error().Int("mismatches", report.Mismatches).Msg("Round trip mismatches detected")
	}
	if cfg.Chart != "" {
		if err := writeChart(h, report, cfg.Chart); err != nil {
			return err
		}
		log.Info().Str("file", cfg.Chart).Msg("Chart written")
	}
	if report.Mismatches > 0 {
		return errors.Errorf("%d round trips did not restore their input", report.Mismatches)
	}
	if cfg.MetricsAddr != "" {
		log.Info().Msg("Metrics stay available until interrupted")
	}
	return nil
}

func writeChart(h *bench.Harness, report *bench.Report, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %s", name)
	}
	if err := h.WriteChart(report, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// serveMetrics exposes reg until ctx ends, so the final values of a finished
// run can still be scraped.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, log *zerolog.Logger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "cannot listen on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	log.Info().Str("addr", listener.Addr().String()).Msg("Serving metrics")
	errC := make(chan error, 1)
	go func() {
		errC <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
	case err := <-errC:
		return errors.Wrap(err, "metrics server stopped")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
