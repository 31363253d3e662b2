package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"stable_backend/internal/models"
)

const (
	namespace = "stable_backend"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database pool metrics
	DBConnectionsOpen  prometheus.Gauge
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge

	// Business metrics
	HorsesTotal         prometheus.Gauge
	HorsesActive        prometheus.Gauge
	StallOccupancyRate  prometheus.Gauge
	MonthlyRevenue      prometheus.Gauge
	LessonsCreatedTotal *prometheus.CounterVec
	LoginAttemptsTotal  *prometheus.CounterVec
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "endpoint"},
		),

		DBConnectionsOpen: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connections_open",
				Help:      "Current number of open database connections",
			},
		),
		DBConnectionsInUse: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connections_in_use",
				Help:      "Current number of in-use database connections",
			},
		),
		DBConnectionsIdle: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connections_idle",
				Help:      "Current number of idle database connections",
			},
		),

		HorsesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "horses_total",
				Help:      "Number of horses at the stable as of the last dashboard computation",
			},
		),
		HorsesActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "horses_active",
				Help:      "Number of active horses as of the last dashboard computation",
			},
		),
		StallOccupancyRate: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stall_occupancy_percent",
				Help:      "Stall occupancy percentage as of the last dashboard computation",
			},
		),
		MonthlyRevenue: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "monthly_revenue",
				Help:      "Lesson revenue for the current month as of the last dashboard computation",
			},
		),
		LessonsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lessons_created_total",
				Help:      "Total number of lessons created",
			},
			[]string{"type"},
		),
		LoginAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of shared-password login attempts",
			},
			[]string{"result"},
		),
	}
}

// RecordHTTPRequest records one finished request.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// UpdateDBStats copies the pool statistics into the gauges.
func (m *Metrics) UpdateDBStats(stats sql.DBStats) {
	m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
	m.DBConnectionsInUse.Set(float64(stats.InUse))
	m.DBConnectionsIdle.Set(float64(stats.Idle))
}

// ObserveDashboard publishes the headline numbers of a dashboard snapshot.
func (m *Metrics) ObserveDashboard(stats models.DashboardStats) {
	m.HorsesTotal.Set(float64(stats.TotalHorses))
	m.HorsesActive.Set(float64(stats.ActiveHorses))
	m.StallOccupancyRate.Set(stats.OccupancyRate)
	m.MonthlyRevenue.Set(stats.MonthlyRevenue)
}

// RecordLessonCreated counts a new lesson by type.
func (m *Metrics) RecordLessonCreated(lessonType string) {
	m.LessonsCreatedTotal.WithLabelValues(lessonType).Inc()
}

// RecordLogin counts a login attempt.
func (m *Metrics) RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.LoginAttemptsTotal.WithLabelValues(result).Inc()
}
