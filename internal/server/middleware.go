package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware throttles clients by IP. The tracker is a personal
// app with no accounts, so the client address is the only identity we have.
func (s *Server) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		if !s.rateLimiter.Allow(c.ClientIP(), s.rateLimit, s.windowSeconds) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
