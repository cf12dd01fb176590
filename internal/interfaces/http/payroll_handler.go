package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/payroll"
)

// PayrollHandler maneja el cálculo de nómina semanal.
type PayrollHandler struct {
	uc *payroll.UseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *payroll.UseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Compute godoc
// @Summary      Nómina del periodo
// @Description  Comisión sobre venta neta, bono por baja devolución y sueldo base
//               por vendedor. Sin fechas usa la semana en curso (lunes a domingo).
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.PayrollResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/payroll [get]
func (h *PayrollHandler) Compute(c *fiber.Ctx) error {
	var from, to time.Time
	var err error
	if s := c.Query("start_date"); s != "" {
		if from, err = time.ParseInLocation("2006-01-02", s, time.Local); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date debe ser YYYY-MM-DD"})
		}
	}
	if s := c.Query("end_date"); s != "" {
		if to, err = time.ParseInLocation("2006-01-02", s, time.Local); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date debe ser YYYY-MM-DD"})
		}
	}
	if from.IsZero() != to.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date van juntos"})
	}

	resp, err := h.uc.Compute(c.Context(), GetOrganizationID(c), from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
