package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/production"
	"github.com/amasasystem/amasa-api/pkg/validator"
)

// ProductionHandler maneja el pronóstico y la confirmación de producción.
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Forecast godoc
// @Summary      Plan de producción sugerido
// @Description  Promedio de venta real del mismo día de la semana + 15% de margen,
//               con el rollup de insumos contra el stock actual.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha objetivo YYYY-MM-DD (default: mañana)"
// @Success      200   {object}  dto.ProductionPlanDTO
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/production/forecast [get]
func (h *ProductionHandler) Forecast(c *fiber.Ctx) error {
	targetDate, err := parseDateOr(c.Query("date"), time.Now().AddDate(0, 0, 1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	plan, err := h.uc.Forecast(c.Context(), GetOrganizationID(c), targetDate)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(plan)
}

// Confirm godoc
// @Summary      Confirmar el plan de producción
// @Description  Descuenta los insumos del plan en una sola transacción. Falla completa
//               si cualquier insumo quedó por debajo del requerimiento.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmProductionRequest  true  "target_date YYYY-MM-DD"
// @Success      200   {object}  dto.ProductionPlanDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/confirm [post]
func (h *ProductionHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	targetDate, _ := time.ParseInLocation("2006-01-02", in.TargetDate, time.Local)
	plan, err := h.uc.Confirm(c.Context(), GetOrganizationID(c), targetDate)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(plan)
}

// parseDateOr interpreta YYYY-MM-DD en hora local, o devuelve el default si
// viene vacío.
func parseDateOr(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
