package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/warehouse"
	"github.com/amasasystem/amasa-api/pkg/validator"
)

// WarehouseHandler maneja las entradas de almacén.
type WarehouseHandler struct {
	uc *warehouse.UseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *warehouse.UseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// AddStock godoc
// @Summary      Entrada de insumo
// @Description  Suma stock en unidad base. Con capture_unit=MAYOR la cantidad llega
//               en kg o L y se convierte x1000 antes de persistir.
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "ingredient_id, amount, capture_unit"
// @Success      200   {object}  dto.IngredientDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse/stock [post]
func (h *WarehouseHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.uc.AddStock(c.Context(), GetOrganizationID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
