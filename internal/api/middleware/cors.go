package middleware

import (
	"net/http"
	"strings"

	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// CORS middleware. Only paths under /api/ get CORS headers, and only for
// origins in allowedOrigins. "*" allows any origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	logger := logging.GetLogger()

	allowAll := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAll = true
			continue
		}
		if !utils.IsValidOrigin(origin) {
			logger.Warn("Ignoring invalid CORS origin %q", origin)
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}

		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			c.Next()
			return
		}

		_, ok := allowed[origin]
		if !ok && !allowAll {
			// Preflight from an unknown origin is refused; simple requests
			// proceed without CORS headers and the browser blocks the response.
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
