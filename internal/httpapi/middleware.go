package httpapi

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"tasklist/internal/auth"
	apperrors "tasklist/internal/errors"
)

const (
	// ownerTagKey is the key used to store the authenticated owner tag in
	// the Fiber context.
	ownerTagKey = "owner_tag"
)

// SessionMiddleware resolves the owner tag from a Bearer session token when
// one is presented. Requests without an Authorization header pass through;
// handlers then fall back to the explicit client_id field. A malformed or
// expired token is rejected outright.
func SessionMiddleware(sessions *auth.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Next()
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return writeError(c, apperrors.NewUnauthorizedError("invalid authorization header format, use: Bearer <token>"))
		}

		claims, err := sessions.ValidateToken(token)
		if err != nil {
			return writeError(c, apperrors.NewUnauthorizedError("invalid or expired token"))
		}

		c.Locals(ownerTagKey, claims.OwnerTag)
		return c.Next()
	}
}

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}

// resolveOwnerTag returns the owner tag for a request: the session token's
// tag when one was presented, otherwise the explicit fallback (client_id
// query parameter or body field). Neither present means the request is
// unauthenticated.
func resolveOwnerTag(c *fiber.Ctx, fallback string) (string, error) {
	if tag, ok := c.Locals(ownerTagKey).(string); ok && tag != "" {
		return tag, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", apperrors.NewUnauthorizedError("missing client_id and no session token presented")
}
