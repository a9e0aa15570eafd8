package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	rateLimitMaxClients = 1000
	rateLimitTTL        = 5 * time.Minute
)

// RateLimit returns a per-client-IP rate limiting middleware. Idle clients
// expire from the table so the server does not accumulate limiters forever.
func (m Middleware) RateLimit(requestsPerMin int) gin.HandlerFunc {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](
		rateLimitMaxClients,
		nil,
		rateLimitTTL,
	)
	perSecond := rate.Limit(float64(requestsPerMin) / 60.0)

	return func(c *gin.Context) {
		ip := clientIP(c.Request)

		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}
