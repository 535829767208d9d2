// Package bench times the transform engine over repeated noise-vector round
// trips, the way the board profiling harness timed key generation.
package bench

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/KarpelesLab/kyber"
	"github.com/KarpelesLab/kyber/internal/clock"
)

// Stage identifies a timed step of one iteration.
type Stage int

const (
	StageNoise Stage = iota
	StageNTT
	StageInvNTT
	numStages
)

var stageNames = [numStages]string{"noise", "ntt", "invntt"}

func (s Stage) String() string {
	if s < 0 || s >= numStages {
		return "unknown"
	}
	return stageNames[s]
}

// Stages lists every stage in execution order.
func Stages() []Stage {
	return []Stage{StageNoise, StageNTT, StageInvNTT}
}

// Harness runs timed iterations. Clock and Rand must be set; Log and Metrics
// are optional.
type Harness struct {
	Params  *kyber.Params
	Clock   clock.Source
	Rand    io.Reader
	Log     *zerolog.Logger
	Metrics *Metrics
	// TickDuration converts clock ticks to wall time. Zero means ticks are
	// nanoseconds.
	TickDuration time.Duration
}

// Sample is the elapsed time of every stage in one iteration.
type Sample [numStages]clock.Instant

// Report summarizes a run.
type Report struct {
	Params     string
	Iterations int
	Mismatches int
	Samples    []Sample
	// Total is the elapsed time of each stage summed over all iterations.
	Total [numStages]time.Duration
}

// Mean returns the average duration of stage over the run.
func (r *Report) Mean(stage Stage) time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Total[stage] / time.Duration(r.Iterations)
}

// Run performs up to iterations round trips. Cancellation is checked between
// iterations; a transform in progress always completes.
func (h *Harness) Run(ctx context.Context, iterations int) (*Report, error) {
	if h.Params == nil || h.Clock == nil || h.Rand == nil {
		return nil, errors.New("bench: harness is missing params, clock or random source")
	}
	log := h.logger()
	report := &Report{
		Params:  h.Params.Name,
		Samples: make([]Sample, 0, iterations),
	}

	s := h.Params.NewPolyVec()
	orig := h.Params.NewPolyVec()
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			log.Info().Int("completed", i).Msg("Benchmark interrupted")
			return report, err
		}

		seed, err := kyber.NewSeed(h.Rand)
		if err != nil {
			return report, errors.Wrapf(err, "iteration %d: cannot read seed", i)
		}

		var sample Sample
		t0 := h.Clock.Now()
		h.Params.NoiseVec(s, seed, 0)
		t1 := h.Clock.Now()
		copy(orig, s)
		t2 := h.Clock.Now()
		s.NTT()
		t3 := h.Clock.Now()
		s.InvNTT()
		t4 := h.Clock.Now()

		sample[StageNoise] = clock.Elapsed(t0, t1)
		sample[StageNTT] = clock.Elapsed(t2, t3)
		sample[StageInvNTT] = clock.Elapsed(t3, t4)

		s.FromMont()
		ok := s.Equal(orig)
		if !ok {
			report.Mismatches++
			log.Warn().Int("iteration", i).Msg("Round trip did not restore the sampled vector")
		}

		for _, st := range Stages() {
			d := h.duration(sample[st])
			report.Total[st] += d
			h.Metrics.observe(st, d.Seconds())
		}
		h.Metrics.iterationDone(ok)
		report.Samples = append(report.Samples, sample)
		report.Iterations++

		log.Debug().
			Int("iteration", i).
			Uint64("noiseTicks", sample[StageNoise].Ticks).
			Uint64("nttTicks", sample[StageNTT].Ticks).
			Uint64("invnttTicks", sample[StageInvNTT].Ticks).
			Msg("Iteration done")
	}

	log.Info().
		Str("params", report.Params).
		Int("iterations", report.Iterations).
		Int("mismatches", report.Mismatches).
		Dur("noiseMean", report.Mean(StageNoise)).
		Dur("nttMean", report.Mean(StageNTT)).
		Dur("invnttMean", report.Mean(StageInvNTT)).
		Msg("Benchmark finished")
	return report, nil
}

func (h *Harness) duration(e clock.Instant) time.Duration {
	if h.TickDuration == 0 {
		return time.Duration(e.Ticks)
	}
	return time.Duration(e.Ticks) * h.TickDuration
}

func (h *Harness) logger() *zerolog.Logger {
	if h.Log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return h.Log
}
