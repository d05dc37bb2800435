package reports

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for report passes. A nil *Metrics
// records nothing.
type Metrics struct {
	builds   *prometheus.CounterVec
	duration prometheus.Histogram
	shared   prometheus.Counter
	notes    *prometheus.CounterVec
	lines    prometheus.Counter
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     *Metrics
)

// NewMetrics registers the report metrics against registerer, or once against
// the default Prometheus registerer when it is nil.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		defaultMetricsOnce.Do(func() {
			defaultMetrics = buildMetrics(prometheus.DefaultRegisterer)
		})
		return defaultMetrics
	}
	return buildMetrics(registerer)
}

func buildMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boukir_report_builds_total",
			Help: "Report passes partitioned by outcome.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boukir_report_build_duration_seconds",
			Help:    "Duration of report passes including data loading.",
			Buckets: prometheus.DefBuckets,
		}),
		shared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boukir_report_shared_total",
			Help: "Build calls answered by a concurrent identical pass.",
		}),
		notes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boukir_report_notes_total",
			Help: "Data-quality notes raised by report passes, by code.",
		}, []string{"code"}),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boukir_report_lines_total",
			Help: "Line items aggregated by report passes.",
		}),
	}
	registerer.MustRegister(m.builds, m.duration, m.shared, m.notes, m.lines)
	return m
}

func (m *Metrics) observeBuild(start time.Time, report *Report, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.builds.WithLabelValues("failure").Inc()
		return
	}
	m.builds.WithLabelValues("success").Inc()
	m.lines.Add(float64(report.Counters.Lines))
	for _, n := range report.Notes {
		m.notes.WithLabelValues(n.Code).Inc()
	}
}

func (m *Metrics) observeShared() {
	if m == nil {
		return
	}
	m.shared.Inc()
}
