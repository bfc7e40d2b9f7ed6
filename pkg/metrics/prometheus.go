package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchTotal    *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	signalsTotal  *prometheus.CounterVec
	skippedCharts *prometheus.CounterVec
	cacheTotal    *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
}

// New registers the recorder's collectors on reg (prometheus.DefaultRegisterer
// when nil).
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		fetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_upstream_fetch_total",
				Help: "Analytics API fetches by result",
			},
			[]string{"result"},
		),
		fetchLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stocklens_upstream_fetch_seconds",
				Help:    "Analytics API fetch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		signalsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_signals_total",
				Help: "Classified chart states",
			},
			[]string{"chart", "state"},
		),
		skippedCharts: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_charts_skipped_total",
				Help: "Charts skipped for missing data",
			},
			[]string{"chart"},
		),
		cacheTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_document_cache_total",
				Help: "Document cache lookups by result",
			},
			[]string{"result"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
	}
}

// RecordFetch records one upstream call ("ok", "upstream_error", "transport_error").
func (r *Recorder) RecordFetch(result string, seconds float64) {
	r.fetchTotal.WithLabelValues(result).Inc()
	r.fetchLatency.WithLabelValues(result).Observe(seconds)
}

func (r *Recorder) RecordSignal(chart, state string) {
	r.signalsTotal.WithLabelValues(chart, state).Inc()
}

func (r *Recorder) RecordSkippedChart(chart string) {
	r.skippedCharts.WithLabelValues(chart).Inc()
}

func (r *Recorder) RecordCache(result string) {
	r.cacheTotal.WithLabelValues(result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
