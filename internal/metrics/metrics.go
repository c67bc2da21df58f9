package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики Prometheus жизненного цикла отчетов
var (
	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hive_transitions_total",
			Help: "Total number of lifecycle operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RewardsIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hive_rewards_issued_total",
			Help: "Total number of rewards issued",
		},
	)

	RewardPointsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hive_rewards_points_total",
			Help: "Total number of points credited to members",
		},
	)

	GeofenceViolationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hive_geofence_violations_total",
			Help: "Total number of proofs rejected by the geofence",
		},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hive_notifications_total",
			Help: "Total number of notifications by stage and outcome",
		},
		[]string{"stage", "outcome"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)
)

var registerOnce sync.Once

// Register регистрирует все метрики в реестре по умолчанию
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			TransitionsTotal,
			RewardsIssuedTotal,
			RewardPointsTotal,
			GeofenceViolationsTotal,
			NotificationsTotal,
			HTTPRequestsTotal,
			HTTPRequestDuration,
		)
	})
}

// GinMiddleware учитывает количество и длительность HTTP запросов по шаблону маршрута
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
