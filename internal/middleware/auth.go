package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/service"
	"github.com/skillmarket/skillmarket-api/internal/utils"
)

// UserLocalKey is the fiber locals slot holding the authenticated profile.
const UserLocalKey = "user"

// TokenProtected returns a middleware that validates opaque bearer tokens
// against the record store and binds the resolved profile to the request.
func TokenProtected(tokens *service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		token := strings.TrimSpace(authorization[len(bearer):])
		if token == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		user, err := tokens.Validate(c.Context(), token)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(UserLocalKey, user)

		return c.Next()
	}
}

// UserFromContext returns the profile bound by TokenProtected, if any.
func UserFromContext(c *fiber.Ctx) (models.PublicUser, bool) {
	if value := c.Locals(UserLocalKey); value != nil {
		if user, ok := value.(models.PublicUser); ok {
			return user, true
		}
	}
	return models.PublicUser{}, false
}
