package routes

import (
	"github.com/myasir/portfolio-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes. The form is served at
// both /api/contact and /api/v1/contact.
func SetupContactRoutes(router *gin.Engine, v1 *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	chain := []gin.HandlerFunc{
		m.ContactRateLimit,
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	}

	router.POST("/api/contact", chain...)
	v1.POST("/contact", chain...)
}
