package report

import (
	"context"

	"github.com/inventorywise/api/internal/application/dto"
)

// PDFGenerator puerto del generador del PDF adjunto (implementado con Maroto).
type PDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, report *dto.StockReportDTO) ([]byte, error)
}

// EmailSender puerto del envío del correo de alerta (implementado con gomail).
// El adaptador renderiza el cuerpo HTML a partir del DTO y adjunta el PDF.
type EmailSender interface {
	SendStockReport(ctx context.Context, recipients []string, report *dto.StockReportDTO, pdf []byte) error
}
