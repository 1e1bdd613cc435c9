// Package report orquesta el reporte de stock bajo: agrega los datos con el
// agregador de dominio, adjunta metadatos, renderiza y envía el correo con el
// PDF a los administradores y gestores de stock.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain/entity"
	domainreport "github.com/inventorywise/api/internal/domain/report"
	"github.com/inventorywise/api/internal/domain/repository"
	"github.com/inventorywise/api/pkg/logger"
)

// ReportTypeLowStock identificador del tipo de reporte en los metadatos.
const ReportTypeLowStock = "low_stock"

// retryBaseDelay espera base entre reintentos de envío; se duplica en cada intento.
const retryBaseDelay = 2 * time.Second

// Config opciones del caso de uso.
type Config struct {
	CompanyName string
	MaxRetries  int // reintentos de envío ante fallo SMTP
}

// StockReportUseCase construye y despacha el reporte de stock.
type StockReportUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	pdf         PDFGenerator
	mailer      EmailSender
	cfg         Config
	log         *logger.Logger
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	pdf PDFGenerator,
	mailer EmailSender,
	cfg Config,
	log *logger.Logger,
) *StockReportUseCase {
	return &StockReportUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		pdf:         pdf,
		mailer:      mailer,
		cfg:         cfg,
		log:         log,
	}
}

// Build carga todos los productos, ejecuta el agregador y adjunta los
// metadatos del reporte (empresa, tipo, fecha de generación).
func (uc *StockReportUseCase) Build(ctx context.Context) (*dto.StockReportDTO, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}

	records := make([]domainreport.ProductStockRecord, 0, len(products))
	for _, p := range products {
		price := p.Price
		records = append(records, domainreport.ProductStockRecord{
			Name:         p.Name,
			SKU:          p.SKU,
			CurrentStock: p.StockQuantity,
			MinThreshold: p.MinStockThreshold,
			MaxThreshold: p.MaxStockThreshold,
			UnitPrice:    &price,
		})
	}

	result, err := domainreport.BuildReport(records)
	if err != nil {
		return nil, err
	}

	return toReportDTO(result, uc.cfg.CompanyName, time.Now()), nil
}

// Send construye el reporte y, si hay productos en alerta, lo envía por correo
// a los usuarios admin y stock_manager. Sin alertas no se envía nada.
func (uc *StockReportUseCase) Send(ctx context.Context) (*dto.SendReportResponse, error) {
	report, err := uc.Build(ctx)
	if err != nil {
		return nil, err
	}

	if report.LowStockCount == 0 {
		uc.log.Info().Msg("reporte de stock: sin productos bajo el umbral, no se envía")
		return &dto.SendReportResponse{
			Sent:    false,
			Message: "no hay productos con stock bajo",
		}, nil
	}

	recipients, err := uc.recipients()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(report.LowStockItems))
	for _, it := range report.LowStockItems {
		names = append(names, it.Name)
	}
	uc.log.Warn().
		Int("low_stock_count", report.LowStockCount).
		Strs("items", names).
		Msg("stock bajo detectado, enviando reporte")

	pdf, err := uc.pdf.GenerateStockReportPDF(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("reporte: el PDF generado está vacío")
	}

	if err := uc.sendWithRetry(ctx, recipients, report, pdf); err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("recipients", len(recipients)).
		Int("low_stock_count", report.LowStockCount).
		Msg("reporte de stock enviado")

	return &dto.SendReportResponse{
		Sent:          true,
		Recipients:    len(recipients),
		LowStockCount: report.LowStockCount,
		Message:       fmt.Sprintf("reporte enviado para %d productos", report.LowStockCount),
	}, nil
}

// recipients resuelve los destinatarios: usuarios activos con rol admin o
// stock_manager.
func (uc *StockReportUseCase) recipients() ([]string, error) {
	users, err := uc.userRepo.ListByRoles(entity.RoleAdmin, entity.RoleStockManager)
	if err != nil {
		return nil, fmt.Errorf("reporte: resolver destinatarios: %w", err)
	}
	emails := make([]string, 0, len(users))
	for _, u := range users {
		if u.Email != "" {
			emails = append(emails, u.Email)
		}
	}
	if len(emails) == 0 {
		return nil, fmt.Errorf("reporte: no hay destinatarios válidos")
	}
	return emails, nil
}

// sendWithRetry reintenta el envío con backoff exponencial ante fallos SMTP.
func (uc *StockReportUseCase) sendWithRetry(ctx context.Context, recipients []string, report *dto.StockReportDTO, pdf []byte) error {
	attempts := uc.cfg.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}
	delay := retryBaseDelay
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			uc.log.Warn().Err(lastErr).Int("attempt", i+1).Msg("reintentando envío del reporte")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
		if lastErr = uc.mailer.SendStockReport(ctx, recipients, report, pdf); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("reporte: envío fallido tras %d intentos: %w", attempts, lastErr)
}

func toReportDTO(result *domainreport.Result, companyName string, generatedAt time.Time) *dto.StockReportDTO {
	return &dto.StockReportDTO{
		CompanyName:         companyName,
		ReportType:          ReportTypeLowStock,
		GeneratedAt:         generatedAt,
		TotalProducts:       result.Summary.TotalProducts,
		LowStockCount:       result.Summary.LowStockCount,
		CriticalItemsCount:  result.Summary.CriticalItemsCount,
		TotalInventoryValue: result.Summary.TotalInventoryValue,
		Report:              toItemDTOs(result.Report),
		LowStockItems:       toItemDTOs(result.LowStockItems),
		CriticalItems:       toItemDTOs(result.CriticalItems),
		ReportSummary: dto.ReportSummaryDTO{
			AvgStockLevel:   result.Summary.AvgStockLevel,
			ItemsBelow50Pct: result.Summary.ItemsBelow50Pct,
		},
	}
}

func toItemDTOs(items []domainreport.ReportItem) []dto.ReportItemDTO {
	out := make([]dto.ReportItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ReportItemDTO{
			Name:          it.Name,
			SKU:           it.SKU,
			CurrentStock:  it.CurrentStock,
			MinThreshold:  it.MinThreshold,
			MaxThreshold:  it.MaxThreshold,
			StockLevelPct: it.StockLevelPct,
			Status:        string(it.Status),
		})
	}
	return out
}
