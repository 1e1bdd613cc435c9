// Package pdf implementa la generación del PDF adjunto del reporte de stock
// bajo usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Reporte de Stock Bajo + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Totales / Promedio / Valor del inventario          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | Mín | Nivel % | Estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CRÍTICOS: productos agotados                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/inventorywise/api/internal/application/dto"
	appreport "github.com/inventorywise/api/internal/application/report"
	domainreport "github.com/inventorywise/api/internal/domain/report"
)

var _ appreport.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning  = &props.Color{Red: 204, Green: 119, Blue: 0}
	colorCritical = &props.Color{Red: 178, Green: 34, Blue: 34}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateStockReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReportPDF(_ context.Context, report *dto.StockReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock Bajo", true).
		WithAuthor(report.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de productos en alerta
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(report.LowStockItems) {
		m.AddRows(r)
	}

	// Bloque de críticos (agotados)
	if len(report.CriticalItems) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorCritical, Thickness: 0.3}))
		for _, r := range criticalRows(report.CriticalItems) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha (der).
func headerRow(report *dto.StockReportDTO) core.Row {
	fecha := report.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE STOCK BAJO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorWarning, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: estadísticas agregadas del inventario.
func summaryRow(report *dto.StockReportDTO) core.Row {
	stat := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: color, Top: 6, Align: align.Center,
			}),
		)
	}

	totalValue := "—"
	if report.TotalInventoryValue != nil {
		totalValue = "$" + report.TotalInventoryValue.StringFixed(2)
	}

	return row.New(16).Add(
		stat("PRODUCTOS", fmt.Sprintf("%d", report.TotalProducts), colorPrimary),
		stat("EN ALERTA", fmt.Sprintf("%d", report.LowStockCount), colorWarning),
		stat("AGOTADOS", fmt.Sprintf("%d", report.CriticalItemsCount), colorCritical),
		stat("VALOR INVENTARIO", totalValue, colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Stock", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Nivel", 2, align.Right),
		h("Estado", 1, align.Center),
	)
}

// tableItemRows: una fila por producto en alerta.
func tableItemRows(items []dto.ReportItemDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		statusColor := colorWarning
		statusLabel := "BAJO"
		if it.Status == string(domainreport.StatusOutOfStock) {
			statusColor = colorCritical
			statusLabel = "AGOTADO"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.CurrentStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.MinThreshold), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(it.StockLevelPct.StringFixed(2)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(statusLabel, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: statusColor, Top: 1,
			})),
		))
	}
	return result
}

// criticalRows: bloque resaltado con los productos agotados.
func criticalRows(items []dto.ReportItemDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PRODUCTOS AGOTADOS — REPOSICIÓN URGENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorCritical, Top: 1,
			}),
		)),
	}
	for _, it := range items {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s  (%s) — umbral mínimo %d", it.Name, it.SKU, it.MinThreshold),
				props.Text{Size: 8, Top: 0.5, Left: 2, Color: colorGray}),
		)))
	}
	return rows
}

// footerRow: leyenda del reporte.
func footerRow(report *dto.StockReportDTO) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Reporte automático de %s. Los niveles se calculan sobre el stock máximo configurado de cada producto.",
				report.CompanyName),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
