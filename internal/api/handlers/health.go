package handlers

import (
	"net/http"
	"time"

	"github.com/myasir/portfolio-api/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	backend   string
	developer string
	now       func() time.Time
}

func NewHealthHandler(backend, developer string) *HealthHandler {
	return &HealthHandler{
		backend:   backend,
		developer: developer,
		now:       time.Now,
	}
}

// Status serves the legacy /api/health probe.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Server is running",
		"year":      h.now().Year(),
		"developer": h.developer,
	})
}

// Check serves /api/v1/health.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       "portfolio-api",
		"version":       version.Version,
		"email_backend": h.backend,
	})
}

// Root serves GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Portfolio API is running",
		"version": version.Version,
	})
}
