package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"schoolgrid/backend/pkg/redis"
	"schoolgrid/backend/pkg/response"
)

// RateLimit caps requests per client IP over a fixed window. Without
// Redis the limiter is a no-op.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP() + ":" + c.FullPath()
		ok, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis trouble must not take the API down.
			c.Next()
			return
		}
		if !ok {
			response.Error(c, 429, 42901, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
