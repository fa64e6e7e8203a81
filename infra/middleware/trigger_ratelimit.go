package middleware

import (
	"github.com/gofiber/fiber/v2"

	"worker_server/pkg/apperr"
	"worker_server/pkg/ratelimit"
	"worker_server/pkg/response"
)

// RateLimit throttles the trigger API by client IP using a Redis-backed
// sliding window. With no Redis configured the limiter degrades to
// allow-all, matching SlidingWindowLimiter's own fallback.
func RateLimit(limiter *ratelimit.SlidingWindowLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, wait := limiter.Allow(c.Context(), c.IP())
		if !allowed {
			c.Set(fiber.HeaderRetryAfter, wait.String())
			return response.Error(c, fiber.StatusTooManyRequests, apperr.CodeRateLimited, "rate limit exceeded")
		}
		return c.Next()
	}
}
