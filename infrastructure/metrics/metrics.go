// ABOUTME: Prometheus metrics for search, validation and HTTP traffic
// ABOUTME: Implements the core Recorder interface and exposes a scrape handler

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace prefixes every metric name
	Namespace = "feed_discovery"
)

// Metrics holds all Prometheus collectors for the service
type Metrics struct {
	registry *prometheus.Registry

	// Search metrics
	SearchesTotal    prometheus.Counter
	SearchResultSize prometheus.Histogram

	// Validation metrics
	ValidationsTotal     *prometheus.CounterVec
	ProbeDurationSeconds prometheus.Histogram

	// HTTP metrics
	RequestsTotal          *prometheus.CounterVec
	RequestDurationSeconds *prometheus.HistogramVec
}

// New creates and registers all metrics on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}
	m.initSearchMetrics(factory)
	m.initValidationMetrics(factory)
	m.initHTTPMetrics(factory)

	return m
}

func (m *Metrics) initSearchMetrics(factory promauto.Factory) {
	m.SearchesTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "search",
		Name:      "requests_total",
		Help:      "Total number of ranked searches",
	})

	m.SearchResultSize = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "search",
		Name:      "results",
		Help:      "Number of feeds returned per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20},
	})
}

func (m *Metrics) initValidationMetrics(factory promauto.Factory) {
	m.ValidationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "validation",
			Name:      "urls_total",
			Help:      "Total number of validated URLs by outcome",
		},
		[]string{"outcome"},
	)

	m.ProbeDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "validation",
		Name:      "probe_duration_seconds",
		Help:      "Duration of liveness probes",
		Buckets:   prometheus.DefBuckets,
	})
}

func (m *Metrics) initHTTPMetrics(factory promauto.Factory) {
	m.RequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.RequestDurationSeconds = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}

// ObserveSearch records one completed search
func (m *Metrics) ObserveSearch(resultCount int) {
	m.SearchesTotal.Inc()
	m.SearchResultSize.Observe(float64(resultCount))
}

// ObserveValidation records the outcome for one URL
func (m *Metrics) ObserveValidation(valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveProbeDuration records how long a liveness probe took
func (m *Metrics) ObserveProbeDuration(seconds float64) {
	m.ProbeDurationSeconds.Observe(seconds)
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDurationSeconds.WithLabelValues(method, route).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
