package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/infrastructure/ratelimit"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/utils"
)

// RateLimiter limits requests per client IP over a sliding window shared
// through Redis by every instance.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	scope   string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  ratelimit.RateLimitConfig{Limit: limit, Window: window},
		scope:   scope,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.Request.Context(), rl.scope+":"+c.ClientIP(), rl.config)
		if err != nil {
			// Redis being down must not take the API with it.
			rl.logger.Warnw("rate limiter unavailable", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
