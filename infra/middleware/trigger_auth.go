// Package middleware provides Fiber middleware for the triage trigger API.
package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"worker_server/pkg/apperr"
	"worker_server/pkg/response"
)

// BearerAuth rejects any request whose Authorization header does not carry
// the configured trigger token. There is no user/session concept here —
// the trigger API has exactly one caller (the scheduler or an operator).
func BearerAuth(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return response.Error(c, fiber.StatusInternalServerError, apperr.CodeConfigError, "trigger token not configured")
		}

		const prefix = "Bearer "
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			return response.Error(c, fiber.StatusUnauthorized, apperr.CodeUnauthorized, "missing bearer token")
		}

		got := header[len(prefix):]
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return response.Error(c, fiber.StatusUnauthorized, apperr.CodeUnauthorized, "invalid bearer token")
		}

		return c.Next()
	}
}
