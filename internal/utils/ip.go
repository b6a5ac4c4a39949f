package utils

import (
	"github.com/gin-gonic/gin"
)

// GetRealIP returns the client IP. X-Real-IP and X-Forwarded-For are only
// honoured when the request arrives from one of the engine's trusted proxies
// (see ConfigureClientIP); otherwise the connection's peer address is used.
func GetRealIP(c *gin.Context) string {
	return c.ClientIP()
}

// ConfigureClientIP makes router resolve client IPs through the given proxies.
// An empty list trusts no proxy.
func ConfigureClientIP(router *gin.Engine, trustedProxies []string) error {
	router.ForwardedByClientIP = true
	router.RemoteIPHeaders = []string{"X-Real-IP", "X-Forwarded-For"}
	if len(trustedProxies) == 0 {
		return router.SetTrustedProxies(nil)
	}
	return router.SetTrustedProxies(trustedProxies)
}
