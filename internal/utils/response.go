package utils

import (
	"net/http"

	"github.com/myasir/portfolio-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// HandleList sends a success response with a collection and its size
func HandleList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, common.NewListResponse(data, count))
}

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewMessageResponse(message))
}

// HandleError sends an error envelope and aborts the chain
func HandleError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, common.NewErrorResponse(message))
}
