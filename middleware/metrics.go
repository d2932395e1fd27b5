package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/metrics"
)

// Metrics records request latency labelled by route template, so /projects/1
// and /projects/2 share a series
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
