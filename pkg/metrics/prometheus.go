// Package metrics provides Prometheus metrics for the salesboard evaluation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Engine metrics
	targetResolutions   *prometheus.CounterVec
	progressEvaluations *prometheus.CounterVec
	progressPercentage  prometheus.Histogram
	competitionStates   *prometheus.CounterVec
	leaderboardRankings *prometheus.CounterVec
	leaderboardSize     prometheus.Histogram
	permissionDecisions *prometheus.CounterVec
	teamBatchSize       prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager. Without WithPrometheusRegistry
// the metrics are registered on prometheus.DefaultRegisterer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "salesboard",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) initializeMetrics() {
	m.targetResolutions = m.counterVec("target_resolutions_total",
		"Target resolutions by source (custom override or organizational default)", "source")
	m.progressEvaluations = m.counterVec("progress_evaluations_total",
		"Progress evaluations by period and resulting status", "period", "status")
	m.progressPercentage = m.histogram("progress_percentage",
		"Distribution of evaluated completion percentages",
		[]float64{10, 25, 50, 75, 90, 100})
	m.competitionStates = m.counterVec("competition_classifications_total",
		"Competition lifecycle classifications by state", "state")
	m.leaderboardRankings = m.counterVec("leaderboard_rankings_total",
		"Leaderboards ranked by metric kind", "kind")
	m.leaderboardSize = m.histogram("leaderboard_size",
		"Number of participants per ranked leaderboard",
		prometheus.ExponentialBuckets(1, 4, 8))
	m.permissionDecisions = m.counterVec("permission_decisions_total",
		"Profile edit hints by actor role and decision", "actor_role", "decision")
	m.teamBatchSize = m.histogram("team_batch_size",
		"Number of users per team progress evaluation",
		prometheus.ExponentialBuckets(1, 2, 10))

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByType = m.counterVec("errors_by_type_total",
		"Total number of errors by type", "error_type", "severity")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Total number of errors by endpoint", "endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "System memory usage in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
	m.systemGCPauseTime = m.histogram("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000})
}

// RecordTargetResolution counts one target resolution.
func (m *Manager) RecordTargetResolution(custom bool) {
	if !m.enabled {
		return
	}
	source := "default"
	if custom {
		source = "custom"
	}
	m.targetResolutions.WithLabelValues(source).Inc()
}

// RecordProgressEvaluation counts one evaluation and observes its percentage.
func (m *Manager) RecordProgressEvaluation(period, status string, percentage float64) {
	if !m.enabled {
		return
	}
	m.progressEvaluations.WithLabelValues(period, status).Inc()
	m.progressPercentage.Observe(percentage)
}

// RecordCompetitionState counts one lifecycle classification.
func (m *Manager) RecordCompetitionState(state string) {
	if !m.enabled {
		return
	}
	m.competitionStates.WithLabelValues(state).Inc()
}

// RecordLeaderboard counts one ranked leaderboard and observes its size.
func (m *Manager) RecordLeaderboard(kind string, size int) {
	if !m.enabled {
		return
	}
	m.leaderboardRankings.WithLabelValues(kind).Inc()
	m.leaderboardSize.Observe(float64(size))
}

// RecordPermissionDecision counts one profile edit hint.
func (m *Manager) RecordPermissionDecision(actorRole string, allowed bool) {
	if !m.enabled {
		return
	}
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	m.permissionDecisions.WithLabelValues(actorRole, decision).Inc()
}

// RecordTeamBatch observes the size of one team evaluation.
func (m *Manager) RecordTeamBatch(size int) {
	if !m.enabled {
		return
	}
	m.teamBatchSize.Observe(float64(size))
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records an error response by endpoint and by type.
func (m *Manager) RecordHTTPError(endpoint, method, errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystem sets memory and goroutine gauges.
func (m *Manager) UpdateSystem(memoryBytes uint64, goroutines int) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(memoryBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
}

// RecordGCPause observes an average GC pause in milliseconds.
func (m *Manager) RecordGCPause(pauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemGCPauseTime.Observe(pauseMs)
}

// Package-level helpers record on the global manager.

// RecordTargetResolution counts one target resolution.
func RecordTargetResolution(custom bool) { globalManager.RecordTargetResolution(custom) }

// RecordProgressEvaluation counts one evaluation and observes its percentage.
func RecordProgressEvaluation(period, status string, percentage float64) {
	globalManager.RecordProgressEvaluation(period, status, percentage)
}

// RecordCompetitionState counts one lifecycle classification.
func RecordCompetitionState(state string) { globalManager.RecordCompetitionState(state) }

// RecordLeaderboard counts one ranked leaderboard and observes its size.
func RecordLeaderboard(kind string, size int) { globalManager.RecordLeaderboard(kind, size) }

// RecordPermissionDecision counts one profile edit hint.
func RecordPermissionDecision(actorRole string, allowed bool) {
	globalManager.RecordPermissionDecision(actorRole, allowed)
}

// RecordTeamBatch observes the size of one team evaluation.
func RecordTeamBatch(size int) { globalManager.RecordTeamBatch(size) }

// RecordHTTPRequest records an HTTP request and its duration.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordHTTPError records an error response by endpoint and by type.
func RecordHTTPError(endpoint, method, errorType, severity string) {
	globalManager.RecordHTTPError(endpoint, method, errorType, severity)
}

// UpdateSystem sets memory and goroutine gauges.
func UpdateSystem(memoryBytes uint64, goroutines int) {
	globalManager.UpdateSystem(memoryBytes, goroutines)
}

// RecordGCPause observes an average GC pause in milliseconds.
func RecordGCPause(pauseMs float64) { globalManager.RecordGCPause(pauseMs) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
