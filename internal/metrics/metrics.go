package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Skyline
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Simulation Metrics
	TicksTotal        prometheus.Counter
	TickDuration      prometheus.Histogram
	SimulatedMinutes  prometheus.Gauge
	FlightTransitions *prometheus.CounterVec
	SeatsBookedTotal  *prometheus.CounterVec
	CompanyCash       prometheus.Gauge
	FleetSize         prometheus.Gauge

	// Background job Metrics
	ArchiveJobDuration *prometheus.HistogramVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all
// metrics registered against reg. Pass prometheus.DefaultRegisterer in the
// server and a fresh prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyline_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skyline_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skyline_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyline_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyline_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Simulation Metrics
		TicksTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "skyline_ticks_total",
				Help: "Total simulation ticks executed",
			},
		),
		TickDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "skyline_tick_duration_seconds",
				Help:    "Wall-clock time spent processing one tick",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
			},
		),
		SimulatedMinutes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "skyline_simulated_minutes",
				Help: "Total simulated minutes elapsed",
			},
		),
		FlightTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyline_flight_transitions_total",
				Help: "Flight status transitions by target status",
			},
			[]string{"status"},
		),
		SeatsBookedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyline_seats_booked_total",
				Help: "Seats booked by seat class",
			},
			[]string{"seat_class"},
		),
		CompanyCash: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "skyline_company_cash",
				Help: "Current company cash balance",
			},
		),
		FleetSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "skyline_fleet_size",
				Help: "Number of owned aircraft",
			},
		),

		ArchiveJobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skyline_archive_job_duration_seconds",
				Help:    "Ledger archive job execution time in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"job_name"},
		),
	}
}
