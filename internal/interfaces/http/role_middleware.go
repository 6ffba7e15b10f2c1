package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
)

// roleLookup es el contrato mínimo que necesita el guard para resolver el rol.
// Lo implementa *usecase.UserUseCase; el uso de interfaz evita el import circular.
type roleLookup interface {
	RoleByEmail(email string) (string, error)
}

// RequireRole devuelve un middleware Fiber que permite continuar solo si el
// usuario del token tiene uno de los roles dados. Consulta el rol en la DB en
// cada petición (sin caché: un cambio de rol aplica de inmediato).
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalEmail).
//
// Comportamiento:
//   - 403 Forbidden → usuario inexistente o rol distinto.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - 401 si no hay email en el contexto (AuthMiddleware debió ponerlo).
func RequireRole(users roleLookup, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "email no encontrado en el token",
			})
		}

		role, err := users.RoleByEmail(email)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ROLE_CHECK_FAILED",
				Message: "no se pudo verificar el rol, intente más tarde",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol actual no tiene acceso a este recurso",
		})
	}
}
