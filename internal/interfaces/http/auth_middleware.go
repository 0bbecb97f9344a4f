package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain/authz"
	"github.com/jhoicas/Turnos-api/pkg/jwt"
)

// Locals keys para los claims en Fiber. Los locals viven únicamente dentro de
// la request: no hay estado compartido entre requests concurrentes.
const (
	LocalUserID         = "user_id"
	LocalUsername       = "username"
	LocalOrganizationID = "organization_id"
	LocalPermissions    = "permissions"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalOrganizationID, claims.OrganizationID)
		c.Locals(LocalPermissions, claims.Permissions)
		return c.Next()
	}
}

// Principal construye el principal autorizable desde los locals (después del
// middleware de auth). Los handlers lo pasan explícitamente a cada caso de uso.
func Principal(c *fiber.Ctx) authz.Principal {
	perms, _ := c.Locals(LocalPermissions).([]string)
	return authz.NewPrincipal(
		localString(c, LocalUserID),
		localString(c, LocalUsername),
		localString(c, LocalOrganizationID),
		perms,
	)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
