package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/friendgraph/internal/metrics"
)

// PrometheusMiddleware records HTTP request duration and count per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Route pattern keeps label cardinality bounded.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		labels := []string{c.Request.Method, route, strconv.Itoa(c.Writer.Status())}
		metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(labels...).Inc()
	}
}
