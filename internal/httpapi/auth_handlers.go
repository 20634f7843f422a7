package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperrors "tasklist/internal/errors"
)

// githubLogin handles GET /auth/github/login: redirects the browser to the
// GitHub authorize page.
func (s *Server) githubLogin(c *fiber.Ctx) error {
	state := uuid.NewString()
	return c.Redirect(s.github.AuthorizeURL(state), fiber.StatusFound)
}

// githubCallback handles GET /auth/github/callback?code=: exchanges the
// OAuth code, resolves the GitHub account and returns a session token whose
// owner tag is the account ID.
func (s *Server) githubCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return writeError(c, apperrors.NewInvalidInputError("code", nil, "missing OAuth code"))
	}

	accessToken, err := s.github.ExchangeCode(c.UserContext(), code)
	if err != nil {
		s.logger.Error("github code exchange failed", "error", err)
		return writeError(c, apperrors.NewUnauthorizedError("GitHub authorization failed"))
	}

	user, err := s.github.FetchUser(c.UserContext(), accessToken)
	if err != nil {
		s.logger.Error("github user lookup failed", "error", err)
		return writeError(c, apperrors.NewUnauthorizedError("GitHub authorization failed"))
	}

	token, err := s.sessions.IssueToken(user.OwnerTag(), user.Login)
	if err != nil {
		s.logger.Error("session token issuance failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to issue session token",
		})
	}

	return c.JSON(SessionResponse{
		Token:    token,
		ClientID: user.OwnerTag(),
		Login:    user.Login,
	})
}
