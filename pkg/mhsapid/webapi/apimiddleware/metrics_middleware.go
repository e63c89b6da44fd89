package apimiddleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mhsapid",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests handled, grouped by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mhsapid",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent handling HTTP requests, grouped by method and route.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(requestsCounter, requestDuration)
}

type MetricsConfig struct {
	Skipper middleware.Skipper
}

// Metrics records a request counter and a duration histogram for every
// handled request. The route label is the registered route
// ("/activities/:activityName/signup"), never the raw request URL.
func Metrics(config MetricsConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultMetricsSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			started := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			requestsCounter.WithLabelValues(c.Request().Method, route,
				strconv.Itoa(c.Response().Status)).Inc()
			requestDuration.WithLabelValues(c.Request().Method, route).
				Observe(time.Since(started).Seconds())

			return err
		}
	}
}

// DefaultMetricsSkipper skips the scrape endpoint itself, static assets and
// health probes.
func DefaultMetricsSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/static") || path == "/healthz" || path == "/metrics"
}
