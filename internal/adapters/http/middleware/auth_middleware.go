package middleware

import (
	"strings"

	"mnp-portal/internal/adapters/persistence/repositories"
	"mnp-portal/internal/config"
	"mnp-portal/internal/pkg/jwt"
	"mnp-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalsUserID = "userID"
	LocalsUser   = "user"
)

// AuthMiddleware creates authentication middleware. The token subject
// is resolved against the user table on every request, so a token for
// a deleted user is rejected even before its expiry.
func AuthMiddleware(cfg *config.Config, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Unauthorized: No token provided")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			return response.Unauthorized(c, "Unauthorized: Token failed")
		}

		user, err := userRepo.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "Unauthorized: Invalid user")
		}

		c.Locals(LocalsUserID, user.ID)
		c.Locals(LocalsUser, user)

		return c.Next()
	}
}
