package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics captures counters and latencies for the ingestion pipeline.
type PipelineMetrics struct {
	filesProcessed   *prometheus.CounterVec
	extractionErrors prometheus.Counter
	reportErrors     prometheus.Counter
	drainRuns        prometheus.Counter
	drainDuration    prometheus.Histogram
	extractLatency   prometheus.Histogram
}

func NewPipelineMetrics() *PipelineMetrics {
	return NewPipelineMetricsWithRegistry(prometheus.DefaultRegisterer)
}

func NewPipelineMetricsWithRegistry(reg prometheus.Registerer) *PipelineMetrics {
	m := &PipelineMetrics{
		filesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "motordesk_files_processed_total",
			Help: "Total number of policy documents pulled through the pipeline",
		}, []string{"outcome"}),
		extractionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "motordesk_extraction_errors_total",
			Help: "Total number of extraction provider failures",
		}),
		reportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "motordesk_report_errors_total",
			Help: "Total number of failed status reports to the record store",
		}),
		drainRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "motordesk_drain_runs_total",
			Help: "Total number of drain loops started",
		}),
		drainDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "motordesk_drain_duration_seconds",
			Help:    "Time taken by a full drain run",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		extractLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "motordesk_extract_duration_seconds",
			Help:    "Time taken to extract a single document",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}

	reg.MustRegister(m.filesProcessed)
	reg.MustRegister(m.extractionErrors)
	reg.MustRegister(m.reportErrors)
	reg.MustRegister(m.drainRuns)
	reg.MustRegister(m.drainDuration)
	reg.MustRegister(m.extractLatency)

	return m
}

func (m *PipelineMetrics) ObserveFile(success bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.filesProcessed.WithLabelValues(outcome).Inc()
}

func (m *PipelineMetrics) ExtractionError() {
	if m == nil {
		return
	}
	m.extractionErrors.Inc()
}

func (m *PipelineMetrics) ReportError() {
	if m == nil {
		return
	}
	m.reportErrors.Inc()
}

func (m *PipelineMetrics) DrainStarted() {
	if m == nil {
		return
	}
	m.drainRuns.Inc()
}

func (m *PipelineMetrics) ObserveDrainDuration(seconds float64) {
	if m == nil {
		return
	}
	m.drainDuration.Observe(seconds)
}

func (m *PipelineMetrics) ObserveExtractDuration(seconds float64) {
	if m == nil {
		return
	}
	m.extractLatency.Observe(seconds)
}
