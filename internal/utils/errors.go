package utils

import (
	"errors"
	"net/http"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/portfolio"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetLogger()
	logger.Error("%s: %v", message, err)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// The error detail is logged server-side only; the client receives defaultMessage.
func HandleAPIError(c *gin.Context, err error, defaultStatus int, defaultMessage string) {
	if errors.Is(err, portfolio.ErrProjectNotFound) {
		HandleError(c, http.StatusNotFound, common.MsgProjectNotFound)
		return
	}

	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		defaultStatus,
		defaultMessage,
		err,
	)

	HandleError(c, defaultStatus, defaultMessage)
}
