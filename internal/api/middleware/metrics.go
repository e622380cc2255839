// Package middleware provides Echo middleware for the searchit gateway.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/searchit/internal/metrics"
)

// unmatchedPath labels requests that hit no route, keeping arbitrary
// client paths out of the label set.
const unmatchedPath = "unmatched"

// healthGauges maps probe paths to the gauge they drive. Probes and
// scrapes are kept out of the request histogram.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and
// count by route template. Item and wish list IDs therefore collapse
// into one series per route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = unmatchedPath
			}
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}

			if gauge, ok := healthGauges[path]; ok {
				gauge.Set(boolToFloat(status >= 200 && status < 300))
				return err
			}
			if _, ok := probePaths[path]; ok {
				return err
			}

			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
