package routes

import (
	"github.com/myasir/portfolio-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupProjectRoutes configures the read-only project catalog
func SetupProjectRoutes(v1 *gin.RouterGroup, project *handlers.ProjectHandler) {
	projects := v1.Group("/projects")
	{
		projects.GET("", project.List)
		projects.GET("/:id", project.Get)
	}
}
