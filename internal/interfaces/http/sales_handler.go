package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/checkout"
	"github.com/amasasystem/amasa-api/internal/application/dispatch"
	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/settlement"
	"github.com/amasasystem/amasa-api/pkg/validator"
)

// SalesHandler maneja el flujo de venta: mostrador, despacho de ruta y corte
// de caja.
type SalesHandler struct {
	checkoutUC   *checkout.UseCase
	dispatchUC   *dispatch.UseCase
	settlementUC *settlement.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(checkoutUC *checkout.UseCase, dispatchUC *dispatch.UseCase, settlementUC *settlement.UseCase) *SalesHandler {
	return &SalesHandler{checkoutUC: checkoutUC, dispatchUC: dispatchUC, settlementUC: settlementUC}
}

// Checkout godoc
// @Summary      Venta de mostrador
// @Description  Registra las SALIDAs del carrito y el cobro en una sola transacción.
//               Devuelve folio de ticket, total y cambio.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "seller_id, items, amount_paid"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.checkoutUC.Checkout(c.Context(), GetOrganizationID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Dispatch godoc
// @Summary      Cargar la ruta de un vendedor
// @Description  Registra el lote de SALIDAs en consignación. No mueve dinero.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DispatchRequest  true  "seller_id e items"
// @Success      201   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dispatch [post]
func (h *SalesHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	if err := h.dispatchUC.Dispatch(c.Context(), GetOrganizationID(c), in); err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "despacho registrado"})
}

// SettlementPreview godoc
// @Summary      Estado del corte de un vendedor
// @Description  Si la ruta ya cerró hoy, el saldo arrastrado y las salidas del día.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        seller_id  path  int  true  "ID del vendedor"
// @Success      200  {object}  dto.SettlementPreviewDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settlement/{seller_id} [get]
func (h *SalesHandler) SettlementPreview(c *fiber.Ctx) error {
	sellerID, err := c.ParamsInt("seller_id")
	if err != nil || sellerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "seller_id inválido"})
	}
	resp, err := h.settlementUC.Preview(c.Context(), GetOrganizationID(c), sellerID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Settle godoc
// @Summary      Corte de caja del día
// @Description  Liquida la ruta: registra devoluciones, pago y saldo nuevo de forma
//               atómica. Un segundo corte del mismo día responde 409.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettlementRequest  true  "seller_id, returns, cash_received"
// @Success      200   {object}  dto.SettlementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settlement [post]
func (h *SalesHandler) Settle(c *fiber.Ctx) error {
	var in dto.SettlementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.settlementUC.Settle(c.Context(), GetOrganizationID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
