package mail

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorywise/api/internal/application/dto"
)

func renderBody(t *testing.T, report *dto.StockReportDTO) string {
	t.Helper()
	tmpl, err := template.New("stock_report").Parse(bodyTemplate)
	require.NoError(t, err, "la plantilla del correo debe parsear")

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, report))
	return buf.String()
}

func sampleReport() *dto.StockReportDTO {
	value := decimal.RequireFromString("1234.50")
	return &dto.StockReportDTO{
		CompanyName:         "InventoryWise",
		ReportType:          "low_stock",
		GeneratedAt:         time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
		TotalProducts:       8,
		LowStockCount:       2,
		CriticalItemsCount:  1,
		TotalInventoryValue: &value,
		LowStockItems: []dto.ReportItemDTO{
			{Name: "Teclado", SKU: "ELEC-tec-2026-03-01", CurrentStock: 2, MinThreshold: 10, StockLevelPct: decimal.RequireFromString("4.00"), Status: "low_stock"},
			{Name: "Mouse", SKU: "ELEC-mou-2026-03-01", CurrentStock: 0, MinThreshold: 5, StockLevelPct: decimal.Zero, Status: "out_of_stock"},
		},
		CriticalItems: []dto.ReportItemDTO{
			{Name: "Mouse", CurrentStock: 0},
		},
		ReportSummary: dto.ReportSummaryDTO{
			AvgStockLevel:   decimal.RequireFromString("35.75"),
			ItemsBelow50Pct: 3,
		},
	}
}

func TestPlantilla_RindeTodosLosCampos(t *testing.T) {
	body := renderBody(t, sampleReport())

	assert.Contains(t, body, "InventoryWise")
	assert.Contains(t, body, "2026-03-15 09:30")
	assert.Contains(t, body, "$1234.50")
	assert.Contains(t, body, "35.75%")
	assert.Contains(t, body, "Teclado")
	assert.Contains(t, body, "4.00%")
	assert.Contains(t, body, "Mouse (0 units)")
}

func TestPlantilla_SinValorDeInventario(t *testing.T) {
	report := sampleReport()
	report.TotalInventoryValue = nil

	body := renderBody(t, report)
	assert.NotContains(t, body, "Total inventory value",
		"sin valor total la fila se omite, no se muestra en cero")
}

func TestPlantilla_SinCriticos(t *testing.T) {
	report := sampleReport()
	report.CriticalItems = nil

	body := renderBody(t, report)
	assert.NotContains(t, body, "urgent restock")
}

func TestPlantilla_EscapaHTMLEnNombres(t *testing.T) {
	report := sampleReport()
	report.LowStockItems[0].Name = `<script>alert("x")</script>`

	body := renderBody(t, report)
	assert.NotContains(t, body, "<script>", "los nombres de producto se escapan")
}
