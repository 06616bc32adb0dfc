package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
)

// DashboardHandler KPIs de inventario y resumen de existencias.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Counters contadores del dashboard. GET /api/dashboard/counters
func (h *DashboardHandler) Counters(c *fiber.Ctx) error {
	out, err := h.uc.GetCounters(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// StockSummary resumen de existencias por producto, con búsqueda opcional
// por nombre o SKU. GET /api/dashboard/stock-summary?search=
func (h *DashboardHandler) StockSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetStockSummary(c.Context(), c.Query("search"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
