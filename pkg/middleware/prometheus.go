package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/metrics"
)

// PrometheusMiddleware Prometheus监控中间件.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		method := c.Request.Method

		c.Next()

		if path == "" {
			path = "unmatched"
		}

		metrics.RequestCounter.WithLabelValues(method, path).Inc()

		duration := time.Since(start).Seconds()
		metrics.RequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}
