package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/ratelimit"
)

// RateLimitMiddleware creates a Gin middleware limiting requests per client IP.
// onReject renders the response when the limit is exceeded.
func RateLimitMiddleware(limiter ratelimit.RateLimiter, scope string, limit ratelimit.Limit, onReject gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())

		res, err := limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			// Fail open if rate limiter fails
			logger.Warn(c.Request.Context(), "Rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			c.Header("Retry-After", strconv.FormatInt(int64(res.RetryAfter/time.Second)+1, 10))
			if onReject != nil {
				onReject(c)
			} else {
				c.String(http.StatusTooManyRequests, "Too Many Requests")
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
