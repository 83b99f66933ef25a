package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/pkg/response"
)

// Counter increments a key that expires ttl after it is first created.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimit allows limit requests per client IP in each fixed window.
// scope separates the budgets of different endpoints.
func RateLimit(counter Counter, scope string, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))
	return func(c *gin.Context) {
		key := "ratelimit:" + scope + ":" + c.ClientIP()
		n, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			// Fail open.
			logger.Warn("rate limit counter unavailable", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}
		if n > int64(limit) {
			c.Header("Retry-After", retryAfter)
			response.TooManyRequests(c, "too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
