// Package metrics holds the Prometheus instrumentation for the resolution
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the pipeline counters. A nil *Metrics is valid and records
// nothing, so tests and library callers can skip instrumentation.
type Metrics struct {
	documentsProcessed prometheus.Counter
	documentsFailed    prometheus.Counter
	codesExtracted     prometheus.Counter
	resolutions        *prometheus.CounterVec
	remoteAttempts     prometheus.Counter
	remoteFailures     prometheus.Counter
	processingSeconds  prometheus.Histogram
	cacheEntriesSwept  prometheus.Counter
}

// New registers the pipeline metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		documentsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "skuresolver_documents_processed_total",
			Help: "Invoice documents successfully processed.",
		}),
		documentsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "skuresolver_documents_failed_total",
			Help: "Invoice documents rejected at parse time.",
		}),
		codesExtracted: factory.NewCounter(prometheus.CounterOpts{
			Name: "skuresolver_codes_extracted_total",
			Help: "Product codes extracted from invoices.",
		}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skuresolver_resolutions_total",
			Help: "Code resolutions by producing stage.",
		}, []string{"provenance"}),
		remoteAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "skuresolver_remote_attempts_total",
			Help: "Remote catalog lookups attempted.",
		}),
		remoteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "skuresolver_remote_failures_total",
			Help: "Remote catalog lookups that yielded nothing.",
		}),
		processingSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skuresolver_processing_seconds",
			Help:    "End-to-end invoice processing duration.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		cacheEntriesSwept: factory.NewCounter(prometheus.CounterOpts{
			Name: "skuresolver_cache_entries_swept_total",
			Help: "Expired resolution cache entries removed by the sweeper.",
		}),
	}
}

func (m *Metrics) DocumentProcessed() {
	if m != nil {
		m.documentsProcessed.Inc()
	}
}

func (m *Metrics) DocumentFailed() {
	if m != nil {
		m.documentsFailed.Inc()
	}
}

func (m *Metrics) CodesExtracted(n int) {
	if m != nil {
		m.codesExtracted.Add(float64(n))
	}
}

func (m *Metrics) Resolution(provenance string) {
	if m != nil {
		m.resolutions.WithLabelValues(provenance).Inc()
	}
}

func (m *Metrics) RemoteAttempt() {
	if m != nil {
		m.remoteAttempts.Inc()
	}
}

func (m *Metrics) RemoteFailure() {
	if m != nil {
		m.remoteFailures.Inc()
	}
}

func (m *Metrics) ProcessingDuration(d time.Duration) {
	if m != nil {
		m.processingSeconds.Observe(d.Seconds())
	}
}

func (m *Metrics) CacheSwept(n int) {
	if m != nil {
		m.cacheEntriesSwept.Add(float64(n))
	}
}
