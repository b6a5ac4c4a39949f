package routes

import (
	"net/http"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/api/middleware"
	"github.com/myasir/portfolio-api/internal/config"
	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ServiceName identifies this API in traces and health output.
const ServiceName = "portfolio-api"

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware, cfg *config.Config, logger *logging.Logger) {
	// Create base API v1 group
	v1 := router.Group("/api/v1")

	// Health and root probes
	SetupHealthRoutes(router, v1, h.Health)

	// Contact routes (public, rate limited)
	SetupContactRoutes(router, v1, h.Contact, m)

	// Project catalog
	SetupProjectRoutes(v1, h.Project)

	if cfg.MetricsEnabled {
		SetupMetricsRoutes(router)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.HandleError(c, http.StatusNotFound, common.MsgNotFound)
	})

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	if cfg.OTLPEndpoint != "" {
		router.Use(otelgin.Middleware(ServiceName))
	}
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.LimitRequestBody(middleware.DefaultMaxBodySize))
}
