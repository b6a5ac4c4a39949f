package routes

import (
	"github.com/myasir/portfolio-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.Engine, v1 *gin.RouterGroup, health *handlers.HealthHandler) {
	router.GET("/", health.Root)
	router.GET("/api/health", health.Status)
	v1.GET("/health", health.Check)
}
