package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// RequireRole ensures the authenticated user holds one of the allowed
// roles. With no arguments it only requires authentication.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		for _, role := range user.Roles {
			if _, exists := allowedSet[role]; exists {
				return c.Next()
			}
		}
		return util.NewForbidden("insufficient role")
	}
}

// RequireInternal ensures the caller holds any internal staff role.
func RequireInternal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !user.IsInternal() {
			return util.NewForbidden("internal role required")
		}
		return c.Next()
	}
}
