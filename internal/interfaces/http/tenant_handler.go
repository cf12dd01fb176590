package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/tenant"
	"github.com/amasasystem/amasa-api/pkg/validator"
)

// TenantHandler maneja el alta y administración de organizaciones.
type TenantHandler struct {
	uc *tenant.UseCase
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *tenant.UseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Provision godoc
// @Summary      Alta de un negocio completo
// @Description  Crea organización, usuario administrador y catálogo plantilla según
//               el giro (panadería, tortillería o pizzería) en una sola transacción.
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProvisionTenantRequest  true  "datos del negocio y del admin"
// @Success      201   {object}  dto.ProvisionTenantResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tenants [post]
func (h *TenantHandler) Provision(c *fiber.Ctx) error {
	var in dto.ProvisionTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.uc.Provision(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetOrganization godoc
// @Summary      Datos de la organización del token
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrganizationDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organization [get]
func (h *TenantHandler) GetOrganization(c *fiber.Ctx) error {
	resp, err := h.uc.GetOrganization(GetOrganizationID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// UpdatePlan godoc
// @Summary      Cambiar el plan de la organización
// @Tags         tenants
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.UpdatePlanRequest  true  "basic o pro"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/organization/plan [put]
func (h *TenantHandler) UpdatePlan(c *fiber.Ctx) error {
	var in dto.UpdatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	if err := h.uc.UpdatePlan(GetOrganizationID(c), in.Plan); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
