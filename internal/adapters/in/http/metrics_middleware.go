package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// httpMetrics holds the request-level Prometheus collectors.
type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware creates an echo middleware recording request counts
// and latencies, labeled by method, route pattern, and status code. The
// collectors are registered on the given registry.
func NewMetricsMiddleware(registerer prometheus.Registerer) echo.MiddlewareFunc {
	metrics := &httpMetrics{
		requests: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ordering",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Number of handled HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		duration: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ordering",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// The route pattern, not the raw URL, keeps cardinality bounded.
			path := c.Path()
			method := c.Request().Method
			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			metrics.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			metrics.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
