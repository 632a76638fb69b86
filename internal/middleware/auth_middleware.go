package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/workhive/workhive-backend/internal/model"
	"github.com/workhive/workhive-backend/internal/repository"
	"github.com/workhive/workhive-backend/internal/service"
	"go.uber.org/zap"
)

const userLocalKey = "user"

// Auth verifies the bearer token against the identity provider and lazily
// creates the local user on first sight of a provider subject id.
func Auth(identity *service.IdentityService, users *repository.UserRepository, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization header required")
		}

		ident, err := identity.VerifyIDToken(c.Context(), token)
		if err != nil {
			logger.Debug("token verification failed", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "invalid identity token")
		}

		firstName, lastName := splitName(ident.Name)
		user, err := users.GetOrCreateByFirebaseUID(ident.UID, model.User{
			Email:     ident.Email,
			FirstName: firstName,
			LastName:  lastName,
			UserType:  model.UserTypeJobSeeker,
		})
		if err != nil {
			logger.Error("loading user failed", zap.String("uid", ident.UID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "could not load user")
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stashed by Auth.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userLocalKey).(*model.User)
	return user
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
