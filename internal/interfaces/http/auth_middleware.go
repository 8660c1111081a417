package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/pkg/jwt"
)

// Locals keys para los datos de sesión en Fiber.
const (
	LocalUserID          = "user_id"
	LocalEmail           = "email"
	LocalCompanyID       = "company_id"
	LocalCompanyIDLegacy = "companyId" // claim heredado de sesiones del sistema anterior
	LocalRole            = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals.
// No resuelve el scope de empresa aquí: eso lo hace el resolver de identidad
// por request, con la cadena perfil → claim → claim heredado.
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
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalCompanyID, claims.CompanyID)
		c.Locals(LocalCompanyIDLegacy, claims.CompanyIDLegacy)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole exige alguno de los roles indicados. Úsese después de AuthMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
	}
}

// SessionFrom arma la sesión de identidad con lo que dejó el middleware.
func SessionFrom(c *fiber.Ctx) identity.Session {
	return identity.Session{
		UserID: GetUserID(c),
		Email:  localString(c, LocalEmail),
		Metadata: map[string]string{
			identity.MetaCompanyID:       localString(c, LocalCompanyID),
			identity.MetaCompanyIDLegacy: localString(c, LocalCompanyIDLegacy),
		},
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetCompanyID devuelve el CompanyID del claim (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	return localString(c, LocalCompanyID)
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
