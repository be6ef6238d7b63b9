package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the REST API
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	inFlight        prometheus.Gauge
	logins          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry
// together with the Go runtime and process collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "habit_tracker",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "habit_tracker",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests served",
		}, []string{"method", "route", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "habit_tracker",
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being served",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "habit_tracker",
			Name:      "logins_total",
			Help:      "Sign-in attempts by outcome",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.inFlight,
		m.logins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records duration and count of every request by route pattern
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		m.requestDuration.WithLabelValues(ctx.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(ctx.Request.Method, route, status).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) observeLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}
