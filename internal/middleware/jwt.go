package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/trade-desk/trade_desk/internal/apperr"
	"github.com/trade-desk/trade_desk/internal/auth"
)

const bearerPrefix = "Bearer "

// JWTAuth returns a middleware that validates bearer tokens and attaches the
// subject identifier to the request context. It does not check that a user
// with that id still exists.
func JWTAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authz, bearerPrefix) {
			return apperr.Unauthorized("Token de autorización requerido",
				"Proporciona un token Bearer válido en el header Authorization")
		}

		tokenStr := strings.TrimSpace(authz[len(bearerPrefix):])
		userID, err := auth.VerifyToken(tokenStr, secret)
		if err != nil {
			// Expired and tampered tokens are deliberately indistinguishable.
			return apperr.Unauthorized("Token inválido", "El token proporcionado no es válido")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
