package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/celiogix/backend/internal/domain"
)

var (
	// Analysis metrics
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celiogix_analyses_total",
			Help: "Total number of gluten-risk analyses by resulting risk level",
		},
		[]string{"risk_level"},
	)

	analysisCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "celiogix_analysis_cache_hits_total",
			Help: "Total number of analyses served from cache",
		},
	)

	analysisCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "celiogix_analysis_cache_misses_total",
			Help: "Total number of analyses computed fresh",
		},
	)

	// Recipe metrics
	recipeScales = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "celiogix_recipe_scales_total",
			Help: "Total number of recipes scaled",
		},
	)

	unitConversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celiogix_unit_conversions_total",
			Help: "Total number of unit conversion requests by outcome",
		},
		[]string{"result"},
	)

	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celiogix_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "celiogix_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "celiogix_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)
)

// Recorder publishes domain events as prometheus metrics.
// The zero value is ready to use.
type Recorder struct{}

// NewRecorder creates a metrics recorder. Every risk level series is
// initialised so dashboards show zeros before the first analysis.
func NewRecorder() *Recorder {
	for _, level := range domain.RiskLevels {
		analysesTotal.WithLabelValues(string(level))
	}
	return &Recorder{}
}

// RecordAnalysis counts a classification outcome
func (r *Recorder) RecordAnalysis(level domain.RiskLevel, cached bool) {
	analysesTotal.WithLabelValues(string(level)).Inc()
	if cached {
		analysisCacheHits.Inc()
	} else {
		analysisCacheMisses.Inc()
	}
}

// RecordScale counts a scaled recipe
func (r *Recorder) RecordScale() {
	recipeScales.Inc()
}

// RecordConversion counts a unit conversion request
func (r *Recorder) RecordConversion(converted bool) {
	result := "converted"
	if !converted {
		result = "unconvertible"
	}
	unitConversions.WithLabelValues(result).Inc()
}

// RecordRequest records an HTTP request outcome
func (r *Recorder) RecordRequest(method, path, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordRateLimitReject counts a request rejected by the rate limiter
func (r *Recorder) RecordRateLimitReject() {
	rateLimitRejects.Inc()
}
