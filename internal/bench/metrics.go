package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "kyber"
	metricsSubsystem = "bench"

	stageLabel = "stage"
)

// Metrics holds the prometheus collectors fed by a Harness.
type Metrics struct {
	duration   *prometheus.HistogramVec
	iterations prometheus.Counter
	mismatches prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "stage_duration_seconds",
				Help:      "Duration of one stage applied to a whole polynomial vector",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 2, 20),
			},
			[]string{stageLabel},
		),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "iterations_total",
			Help:      "Number of completed benchmark iterations",
		}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "roundtrip_mismatches_total",
			Help:      "Number of iterations whose inverse transform did not restore the input",
		}),
	}
	for _, c := range []prometheus.Collector{m.duration, m.iterations, m.mismatches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(stage Stage, seconds float64) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(stage.String()).Observe(seconds)
}

func (m *Metrics) iterationDone(ok bool) {
	if m == nil {
		return
	}
	m.iterations.Inc()
	if !ok {
		m.mismatches.Inc()
	}
}
