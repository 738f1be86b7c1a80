// Package metrics provides Prometheus metrics for the assignment engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Assignment outcomes
	recommendationsTotal prometheus.Counter
	unassignedTotal      prometheus.Counter
	fallbacksTotal       prometheus.Counter

	// Batch performance
	batchDuration prometheus.Histogram

	// Capacity outcomes
	utilizationsTotal  prometheus.Counter
	overAllocatedTotal prometheus.Counter

	// Prompt reconciliation quality
	unknownTokensTotal prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rostra",
		subsystem:        "assignment",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recommendationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendations_total",
		Help:      "Total number of tasks for which an assignee was recommended",
	})

	m.unassignedTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unassigned_total",
		Help:      "Total number of tasks left unassigned (no positive-scoring candidate)",
	})

	m.fallbacksTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fallback_assignments_total",
		Help:      "Total number of assignments made by the least-loaded fallback rule",
	})

	m.batchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_duration_milliseconds",
		Help:      "Histogram of batch recommendation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.utilizationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "utilization_computations_total",
		Help:      "Total number of per-member utilization computations",
	})

	m.overAllocatedTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "over_allocated_total",
		Help:      "Total number of utilization computations flagging over-allocation",
	})

	m.unknownTokensTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unknown_tokens_total",
		Help:      "Total number of short-id tokens rejected during prompt reconciliation",
	})
}

// Package-level recording functions operating on the global manager.

// RecordRecommendation increments the recommendation counter.
func RecordRecommendation() {
	globalManager.recommendationsTotal.Inc()
}

// RecordUnassigned increments the unassigned-outcome counter.
func RecordUnassigned() {
	globalManager.unassignedTotal.Inc()
}

// RecordFallbackAssignment increments the fallback-assignment counter.
func RecordFallbackAssignment() {
	globalManager.fallbacksTotal.Inc()
}

// RecordBatchDuration records a batch recommendation duration.
func RecordBatchDuration(durationMs float64) {
	globalManager.batchDuration.Observe(durationMs)
}

// RecordUtilization counts one utilization computation, flagged or not.
func RecordUtilization(overAllocated bool) {
	globalManager.utilizationsTotal.Inc()
	if overAllocated {
		globalManager.overAllocatedTotal.Inc()
	}
}

// RecordUnknownToken increments the rejected-token counter.
func RecordUnknownToken() {
	globalManager.unknownTokensTotal.Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
