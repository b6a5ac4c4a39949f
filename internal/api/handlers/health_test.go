package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/myasir/portfolio-api/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newHealthRouter() *gin.Engine {
	h := NewHealthHandler("smtp", "Muhammad Yasir")
	h.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/api/health", h.Status)
	router.GET("/api/v1/health", h.Check)
	return router
}

func TestHealthEndpoints(t *testing.T) {
	router := newHealthRouter()

	tests := []struct {
		path string
		want map[string]interface{}
	}{
		{
			path: "/api/health",
			want: map[string]interface{}{
				"status":    "ok",
				"message":   "Server is running",
				"year":      float64(2026),
				"developer": "Muhammad Yasir",
			},
		},
		{
			path: "/api/v1/health",
			want: map[string]interface{}{
				"status":        "healthy",
				"service":       "portfolio-api",
				"version":       version.Version,
				"email_backend": "smtp",
			},
		},
		{
			path: "/",
			want: map[string]interface{}{
				"status":  "healthy",
				"message": "Portfolio API is running",
				"version": version.Version,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, decodeMap(t, w))
		})
	}
}
