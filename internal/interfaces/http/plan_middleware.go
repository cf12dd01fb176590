package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// planChecker es el contrato mínimo que necesita el middleware para conocer
// el plan de la organización. Lo implementa *tenant.UseCase; la interfaz
// evita acoplar el middleware al caso de uso completo.
type planChecker interface {
	GetOrganization(organizationID string) (*dto.OrganizationDTO, error)
}

// RequirePlan devuelve un middleware Fiber que verifica que la organización
// del token tenga el plan requerido. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 Forbidden → la función pertenece a un plan superior.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Sin organization_id en el contexto responde 401.
func RequirePlan(plan string, checker planChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizationID := GetOrganizationID(c)
		if organizationID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "organization_id no encontrado en el token",
			})
		}

		org, err := checker.GetOrganization(organizationID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PLAN_CHECK_FAILED",
				Message: "no se pudo verificar el plan, intente más tarde",
			})
		}

		if !planCovers(org.Plan, plan) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PLAN_REQUIRED",
				Message: "esta función requiere el plan '" + plan + "'",
			})
		}
		return c.Next()
	}
}

// planCovers: pro cubre todo; basic solo cubre basic.
func planCovers(have, need string) bool {
	if have == entity.PlanPro {
		return true
	}
	return need == entity.PlanBasic
}
