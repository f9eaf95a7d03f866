package middleware

import (
	"strings"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/config"
	"cabmed-api/internal/pkg/jwt"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only ADMINISTRATEUR role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(models.RoleAdministrateur)
}

// MedecinOnly middleware allows only MEDECIN role
func MedecinOnly() fiber.Handler {
	return RoleMiddleware(models.RoleMedecin)
}

// SecretaireOrAdmin middleware allows SECRETAIRE or ADMINISTRATEUR roles
func SecretaireOrAdmin() fiber.Handler {
	return RoleMiddleware(models.RoleSecretaire, models.RoleAdministrateur)
}

// Staff middleware allows any authenticated staff role
func Staff() fiber.Handler {
	return RoleMiddleware(models.RoleAdministrateur, models.RoleMedecin, models.RoleSecretaire)
}
