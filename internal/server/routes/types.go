package routes

import (
	"github.com/myasir/portfolio-api/internal/api/handlers"
	"github.com/myasir/portfolio-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
	Project *handlers.ProjectHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
	// ContactRateLimit is shared by every contact path so clients cannot
	// double their allowance by switching paths.
	ContactRateLimit gin.HandlerFunc
}
