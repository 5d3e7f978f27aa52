package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/domain"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve flujo, ingresos por categoría y KPIs del mes indicado.
// GET /api/dashboard/summary?month=2
//
// Sin month: visión general del año (stock actual).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	month, err := monthFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	summary, err := h.uc.Summary(c.UserContext(), month)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetCategory detalle de ventas por producto de una categoría.
// GET /api/dashboard/categories/:category
func (h *DashboardHandler) GetCategory(c *fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return writeError(c, domain.NewValidationError("category", "inválida"))
	}
	detail, err := h.uc.CategoryDetail(c.UserContext(), category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(detail)
}
