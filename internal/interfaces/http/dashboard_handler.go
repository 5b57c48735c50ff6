package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/antorcha-inventario/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del panel principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs del panel.
// GET /api/dashboard
//
// Respuesta: DashboardDTO (total_products, total_stock, inventory_value,
// sales_today, cash_today, date_label). El día se calcula en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
