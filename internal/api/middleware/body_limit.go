package middleware

import (
	"net/http"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize caps request bodies at 64 KiB.
const DefaultMaxBodySize int64 = 64 << 10

// LimitRequestBody rejects bodies larger than maxBytes. A declared
// Content-Length over the limit is refused up front; otherwise reads past the
// limit fail and binding reports the error.
func LimitRequestBody(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}

	return func(c *gin.Context) {
		if c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			utils.HandleError(c, http.StatusRequestEntityTooLarge, common.MsgRequestTooLarge)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
