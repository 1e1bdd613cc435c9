package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/application/report"
	domainreport "github.com/inventorywise/api/internal/domain/report"
)

// ReportHandler expone el reporte de stock: consulta en línea y disparo manual
// del envío por correo (protegido).
type ReportHandler struct {
	uc *report.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetStockReport godoc
// @Summary      Reporte de stock en línea
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) GetStockReport(c *fiber.Ctx) error {
	out, err := h.uc.Build(c.UserContext())
	if err != nil {
		var invalid *domainreport.InvalidRecordError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_RECORD", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SendStockReport godoc
// @Summary      Enviar el reporte de stock por correo
// @Description  Envía el PDF a los admins y gestores de stock. Sin productos en alerta, no se envía nada.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SendReportResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/reports/stock/send [post]
func (h *ReportHandler) SendStockReport(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.UserContext())
	if err != nil {
		var invalid *domainreport.InvalidRecordError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_RECORD", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
