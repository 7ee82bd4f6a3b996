package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/barbeariamb/admin-api/internal/httperr"
)

// LoginRateLimit is a fixed-window per-IP limiter backed by Redis, applied to
// the login route. A nil client disables it; Redis errors fail open so an
// outage never locks staff out.
func LoginRateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "rl:login:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			httperr.TooManyRequests(c, "too_many_attempts", "Muitas tentativas. Tente novamente em instantes.")
			c.Abort()
			return
		}

		c.Next()
	}
}
