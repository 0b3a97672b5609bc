package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"github.com/transit-directory/internal/usecase"
)

const sessionKey = "session"

// RequireAuth verifies the bearer token and stores the claims in the request
// context for handlers and the admin guard.
func RequireAuth(authUC *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return utils.SendError(c, err)
		}

		claims, err := authUC.ParseToken(c.Context(), token)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(sessionKey, claims)
		return c.Next()
	}
}

// RequireAdmin rejects non-admin sessions. It must run behind RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Session(c)
		if claims == nil || !claims.IsAdmin {
			return utils.SendError(c, errors.ErrAdminRequired)
		}
		return c.Next()
	}
}

// Session returns the authenticated claims, or nil outside RequireAuth.
func Session(c *fiber.Ctx) *usecase.AuthClaims {
	claims, _ := c.Locals(sessionKey).(*usecase.AuthClaims)
	return claims
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.ErrMissingToken
	}
	return parts[1], nil
}
