package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportItemDTO ítem del reporte con sus campos derivados. Los nombres JSON
// son el contrato que consume la plantilla del correo.
type ReportItemDTO struct {
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	CurrentStock  int             `json:"current_stock"`
	MinThreshold  int             `json:"min_threshold"`
	MaxThreshold  int             `json:"max_threshold"`
	StockLevelPct decimal.Decimal `json:"stock_level_pct"`
	Status        string          `json:"status"`
}

// ReportSummaryDTO estadísticas agregadas del reporte.
type ReportSummaryDTO struct {
	AvgStockLevel   decimal.Decimal `json:"avg_stock_level"`
	ItemsBelow50Pct int             `json:"items_below_50_pct"`
}

// StockReportDTO reporte completo con los metadatos que la capa de aplicación
// adjunta antes de renderizar (empresa, tipo, fecha de generación).
type StockReportDTO struct {
	CompanyName         string           `json:"company_name"`
	ReportType          string           `json:"report_type"`
	GeneratedAt         time.Time        `json:"generated_at"`
	TotalProducts       int              `json:"total_products"`
	LowStockCount       int              `json:"low_stock_count"`
	CriticalItemsCount  int              `json:"critical_items_count"`
	TotalInventoryValue *decimal.Decimal `json:"total_inventory_value,omitempty"`
	Report              []ReportItemDTO  `json:"report"`
	LowStockItems       []ReportItemDTO  `json:"low_stock_items"`
	CriticalItems       []ReportItemDTO  `json:"critical_items"`
	ReportSummary       ReportSummaryDTO `json:"report_summary"`
}

// SendReportResponse resultado del disparo manual del reporte.
type SendReportResponse struct {
	Sent          bool   `json:"sent"`
	Recipients    int    `json:"recipients"`
	LowStockCount int    `json:"low_stock_count"`
	Message       string `json:"message"`
}
