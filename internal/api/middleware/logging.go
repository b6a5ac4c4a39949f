package middleware

import (
	"strconv"
	"time"

	"github.com/myasir/portfolio-api/internal/api/constants"
	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/metrics"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every finished request through logger and records its
// latency. The logger decides whether request lines are written.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		method := c.Request.Method

		// Process request
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		// Route template keeps label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(method, route, strconv.Itoa(statusCode), latency)

		logger.LogHTTPRequest(
			method,
			c.Request.URL.Path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			statusCode,
			c.Writer.Size(),
			latency.String(),
		)
	}
}
