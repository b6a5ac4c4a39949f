package middleware

import (
	"net/http"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic anywhere in the chain into the generic 500 envelope.
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				utils.HandleError(c, http.StatusInternalServerError, common.MsgServerError)
			}
		}()
		c.Next()
	}
}
