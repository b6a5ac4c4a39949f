package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"x-real-ip from trusted proxy", []string{"10.0.0.0/8"}, "10.0.0.5:443", map[string]string{"X-Real-IP": "203.0.113.7"}, "203.0.113.7"},
		{"x-forwarded-for skips trusted hops", []string{"10.0.0.0/8"}, "10.0.0.5:443", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, "198.51.100.1"},
		{"x-real-ip wins", []string{"10.0.0.5"}, "10.0.0.5:443", map[string]string{"X-Real-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, "203.0.113.7"},
		{"headers from untrusted peer ignored", []string{"10.0.0.0/8"}, "192.0.2.10:54321", map[string]string{"X-Real-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, "192.0.2.10"},
		{"no trusted proxies", nil, "192.0.2.10:54321", map[string]string{"X-Forwarded-For": "10.0.0.99"}, "192.0.2.10"},
		{"remote addr", nil, "192.0.2.10:54321", nil, "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			require.NoError(t, ConfigureClientIP(router, tt.trusted))

			w := httptest.NewRecorder()
			c := gin.CreateTestContextOnly(w, router)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, GetRealIP(c))
		})
	}
}

func TestConfigureClientIP_Invalid(t *testing.T) {
	assert.Error(t, ConfigureClientIP(gin.New(), []string{"not-an-ip"}))
}
