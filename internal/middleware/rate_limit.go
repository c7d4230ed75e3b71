package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const defaultRatePerMin = 60

// RateLimit enforces a per-client-IP request budget. Limiters are kept in a
// map keyed by IP; entries live for the process lifetime, which is fine for
// the small client population this service sees.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.RateLimit.PerMin
	if perMin <= 0 {
		perMin = defaultRatePerMin
	}
	burst := m.config.RateLimit.Burst
	if burst <= 0 {
		burst = perMin
	}

	var limiters sync.Map
	limit := rate.Every(time.Minute / time.Duration(perMin))

	return func(c *gin.Context) {
		ip := c.ClientIP()
		v, _ := limiters.LoadOrStore(ip, rate.NewLimiter(limit, burst))
		if !v.(*rate.Limiter).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}
		c.Next()
	}
}
