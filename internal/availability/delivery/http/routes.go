package http

import (
	"github.com/gin-gonic/gin"

	"rental-availability/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Both routes
// pass through the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	avail := rg.Group("/availability")
	{
		avail.GET("", mw.RateLimit(), h.Query)
		avail.POST("/resolve", mw.RateLimit(), h.Resolve)
	}
}
