package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/report"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler descargas de reportes.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MovementsXLSX godoc
// @Summary      Exportar movimientos a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        category  query  string  false  "Categoría"
// @Param        kind      query  string  false  "entrada|saida"
// @Param        month     query  int     false  "Mes 0-11"
// @Success      200
// @Router       /api/reports/movements.xlsx [get]
func (h *ReportHandler) MovementsXLSX(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	data, filename, err := h.uc.MovementsXLSX(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, contentTypeXLSX, filename, data)
}

// StockPDF godoc
// @Summary      Posición de stock en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.StockPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, data)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
