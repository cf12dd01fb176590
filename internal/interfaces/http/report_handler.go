package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/reporting"
)

// ReportHandler maneja el reporte diario y la bitácora.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Reporte diario de operación
// @Description  Acumulado por vendedor (despachado, devuelto, vendido, dinero,
//               eficiencia), top 5 de productos despachados y total global.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200  {object}  dto.DailyReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	day, err := parseDateOr(c.Query("date"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	resp, err := h.uc.Daily(c.Context(), GetOrganizationID(c), day)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Activity godoc
// @Summary      Bitácora reciente
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de entradas (default 50)"
// @Success      200  {array}  entity.AuditLog
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/activity [get]
func (h *ReportHandler) Activity(c *fiber.Ctx) error {
	entries, err := h.uc.RecentActivity(GetOrganizationID(c), c.QueryInt("limit"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(entries)
}
