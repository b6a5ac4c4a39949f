package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Sustained requests per minute for one client IP
	PerMinute int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// Idle limiters older than this are dropped
	TTL time.Duration
	// OnReject is called for every request refused with 429
	OnReject func(c *gin.Context)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter holds one token bucket per client IP.
type ipLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	interval  time.Duration
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiter(config RateLimitConfig) *ipLimiter {
	if config.PerMinute <= 0 {
		config.PerMinute = 10
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}
	if config.TTL <= 0 {
		config.TTL = 10 * time.Minute
	}
	return &ipLimiter{
		clients:  make(map[string]*clientLimiter),
		interval: time.Minute / time.Duration(config.PerMinute),
		burst:    config.Burst,
		ttl:      config.TTL,
		now:      time.Now,
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.ttl {
		for k, v := range l.clients {
			if now.Sub(v.lastSeen) > l.ttl {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(l.interval), l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// RateLimitMiddleware creates a per-client-IP rate limiting middleware
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiters := newIPLimiter(config)

	return func(c *gin.Context) {
		limiter := limiters.get(utils.GetRealIP(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiters.burst))

		if !limiter.Allow() {
			if config.OnReject != nil {
				config.OnReject(c)
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(limiters.interval.Seconds()))))
			utils.HandleError(c, http.StatusTooManyRequests, common.MsgTooManyRequests)
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}
