package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/report"
)

// DashboardHandler expone las proyecciones de lectura del dashboard.
type DashboardHandler struct {
	uc *report.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *report.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// dateRange parsea begin/end del query string. Sin parámetros el rango
// por defecto es el mes calendario en curso.
func dateRange(c *fiber.Ctx) (time.Time, time.Time, *dto.ErrorResponse) {
	var in dto.DateRangeRequest
	if err := c.QueryParser(&in); err != nil {
		return time.Time{}, time.Time{}, &dto.ErrorResponse{Code: "invalid_input", Message: "parámetros de fecha inválidos"}
	}

	now := time.Now()
	begin := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := begin.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if in.Begin != "" {
		t, err := time.ParseInLocation("2006-01-02", in.Begin, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, &dto.ErrorResponse{Code: "invalid_input", Message: "begin debe ser una fecha YYYY-MM-DD"}
		}
		begin = t
	}
	if in.End != "" {
		t, err := time.ParseInLocation("2006-01-02", in.End, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, &dto.ErrorResponse{Code: "invalid_input", Message: "end debe ser una fecha YYYY-MM-DD"}
		}
		// el fin de rango incluye el día completo
		end = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if end.Before(begin) {
		return time.Time{}, time.Time{}, &dto.ErrorResponse{Code: "invalid_input", Message: "end no puede ser anterior a begin"}
	}
	return begin, end, nil
}

// Summary godoc
// @Summary Resumen del dashboard
// @Description Valores y unidades compradas/consumidas, compras del mes, últimas compras y flujo mensual
// @Tags dashboard
// @Produce json
// @Param begin query string false "Fecha inicial (YYYY-MM-DD)"
// @Param end query string false "Fecha final (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	begin, end, errResp := dateRange(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	summary, err := h.uc.GetSummary(c.Context(), begin, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// PurchasedValue valor comprado en el rango. GET /api/dashboard/purchased-value
func (h *DashboardHandler) PurchasedValue(c *fiber.Ctx) error {
	begin, end, errResp := dateRange(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	value, err := h.uc.PurchasedValue(c.Context(), begin, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"value": value})
}

// ConsumedValue valor consumido en el rango. GET /api/dashboard/consumed-value
func (h *DashboardHandler) ConsumedValue(c *fiber.Ctx) error {
	begin, end, errResp := dateRange(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	value, err := h.uc.ConsumedValue(c.Context(), begin, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"value": value})
}

// PurchasedUnits unidades compradas en el rango. GET /api/dashboard/purchased-units
func (h *DashboardHandler) PurchasedUnits(c *fiber.Ctx) error {
	begin, end, errResp := dateRange(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	units, err := h.uc.PurchasedUnits(c.Context(), begin, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"units": units})
}

// ConsumedUnits unidades consumidas en el rango. GET /api/dashboard/consumed-units
func (h *DashboardHandler) ConsumedUnits(c *fiber.Ctx) error {
	begin, end, errResp := dateRange(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	units, err := h.uc.ConsumedUnits(c.Context(), begin, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"units": units})
}

// PurchasedCount compras del mes en curso. GET /api/dashboard/purchases-this-month
func (h *DashboardHandler) PurchasedCount(c *fiber.Ctx) error {
	n, err := h.uc.PurchasesThisMonth(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": n})
}

// LastPurchases últimas compras registradas. GET /api/dashboard/last-purchases
func (h *DashboardHandler) LastPurchases(c *fiber.Ctx) error {
	rows, err := h.uc.LastPurchases(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// MonthlyFlow godoc
// @Summary Flujo mensual de compras y consumo
// @Description Doce filas, una por mes calendario, agregando los movimientos de todos los años; meses sin movimientos en cero
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.MonthlyFlowDTO
// @Router /api/dashboard/monthly-flow [get]
func (h *DashboardHandler) MonthlyFlow(c *fiber.Ctx) error {
	rows, err := h.uc.MonthlyFlow(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
