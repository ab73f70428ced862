// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sales_call_insights"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Request metrics
	RequestsTotal    prometheus.Counter
	RequestsInFlight prometheus.Gauge
	RequestDuration  prometheus.Histogram
	RequestFailures  *prometheus.CounterVec

	// Upload metrics
	AudioBytesReceived prometheus.Counter

	// Pipeline metrics
	TranscriptionLatency prometheus.Histogram
	TranscriptWords      prometheus.Counter
	NoSpeechTotal        prometheus.Counter
	AnalysisLatency      prometheus.Histogram
	SalesCallsDetected   prometheus.Counter

	// Event publish metrics
	EventPublishTotal   *prometheus.CounterVec
	EventPublishErrors  *prometheus.CounterVec
	EventPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of analyze requests received",
		}),
		RequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "requests_in_flight",
			Help:      "Number of analyze requests currently being processed",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "End-to-end analyze request duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}),
		RequestFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_failures_total",
			Help:      "Total number of failed analyze requests",
		}, []string{"stage"}),

		AudioBytesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_bytes_received_total",
			Help:      "Total uploaded audio bytes received",
		}),

		TranscriptionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcription_latency_seconds",
			Help:      "Transcription vendor call latency in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		}),
		TranscriptWords: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcript_words_total",
			Help:      "Total words returned by the transcription vendor",
		}),
		NoSpeechTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_speech_total",
			Help:      "Total uploads with no detectable speech",
		}),
		AnalysisLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_latency_seconds",
			Help:      "Language-model call latency in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		}),
		SalesCallsDetected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_calls_detected_total",
			Help:      "Total analyses classified as sales calls",
		}),

		EventPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_total",
			Help:      "Total number of Kafka events published",
		}, []string{"topic"}),
		EventPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic"}),
		EventPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordRequestStart records an analyze request starting.
func (m *Metrics) RecordRequestStart() {
	m.RequestsTotal.Inc()
	m.RequestsInFlight.Inc()
}

// RecordRequestEnd records an analyze request finishing.
func (m *Metrics) RecordRequestEnd(durationSeconds float64) {
	m.RequestsInFlight.Dec()
	m.RequestDuration.Observe(durationSeconds)
}

// RecordFailure records a failed request by pipeline stage.
func (m *Metrics) RecordFailure(stage string) {
	m.RequestFailures.WithLabelValues(stage).Inc()
}

// RecordUpload records the size of an accepted upload.
func (m *Metrics) RecordUpload(bytes int) {
	m.AudioBytesReceived.Add(float64(bytes))
}

// RecordTranscription records a completed transcription vendor call.
func (m *Metrics) RecordTranscription(words int, latencySeconds float64) {
	m.TranscriptionLatency.Observe(latencySeconds)
	m.TranscriptWords.Add(float64(words))
	if words == 0 {
		m.NoSpeechTotal.Inc()
	}
}

// RecordAnalysis records a completed language-model call.
func (m *Metrics) RecordAnalysis(isSalesCall bool, latencySeconds float64) {
	m.AnalysisLatency.Observe(latencySeconds)
	if isSalesCall {
		m.SalesCallsDetected.Inc()
	}
}

// RecordEventPublish records a Kafka publish attempt.
func (m *Metrics) RecordEventPublish(topic string, err error, latencySeconds float64) {
	m.EventPublishTotal.WithLabelValues(topic).Inc()
	m.EventPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.EventPublishErrors.WithLabelValues(topic).Inc()
	}
}
