// Package report implementa el agregador del reporte de stock: clasifica cada
// producto según sus umbrales, calcula porcentajes de nivel de stock y produce
// el resumen que consume la plantilla del correo de alerta.
//
// Es una transformación pura: sin I/O, sin estado compartido, determinista para
// el mismo input. La capa de aplicación adjunta los metadatos del reporte
// (empresa, tipo, fecha de generación) antes de renderizar.
package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// StockStatus estado derivado de un producto frente a sus umbrales.
type StockStatus string

const (
	StatusNormal     StockStatus = "normal"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// alertListLimit número máximo de ítems en las listas de alerta y críticos.
// El conteo agregado (LowStockCount, CriticalItemsCount) no tiene tope.
const alertListLimit = 5

// fifty umbral del contador ItemsBelow50Pct.
var fifty = decimal.NewFromInt(50)

var hundred = decimal.NewFromInt(100)

// ProductStockRecord registro de entrada, propiedad de la capa de persistencia.
// El agregador no lo muta. UnitPrice es opcional: solo si TODOS los registros
// lo traen se calcula TotalInventoryValue.
type ProductStockRecord struct {
	Name         string
	SKU          string
	CurrentStock int
	MinThreshold int
	MaxThreshold int
	UnitPrice    *decimal.Decimal
}

// ReportItem registro enriquecido con el estado y el porcentaje de nivel de stock.
// StockLevelPct = CurrentStock/MaxThreshold*100, redondeado a 2 decimales;
// 0 cuando MaxThreshold es 0; puede superar 100 (sobre-stock, no es error).
type ReportItem struct {
	Name          string
	SKU           string
	CurrentStock  int
	MinThreshold  int
	MaxThreshold  int
	StockLevelPct decimal.Decimal
	Status        StockStatus
}

// Summary estadísticas agregadas del reporte, recalculadas en cada invocación.
// TotalInventoryValue es nil cuando algún registro no trae UnitPrice; el
// renderizador debe tratarlo como ausente, no como cero.
type Summary struct {
	TotalProducts       int
	LowStockCount       int
	CriticalItemsCount  int
	ItemsBelow50Pct     int
	AvgStockLevel       decimal.Decimal
	TotalInventoryValue *decimal.Decimal
}

// Result salida completa del agregador.
// Report preserva el orden de entrada; LowStockItems y CriticalItems van
// ordenados ascendentemente por StockLevelPct (el más bajo primero) y
// acotados a 5 entradas, con desempate por orden de entrada.
type Result struct {
	Report        []ReportItem
	LowStockItems []ReportItem
	CriticalItems []ReportItem
	Summary       Summary
}

// InvalidRecordError registro de entrada que viola el contrato (valores
// negativos o MaxThreshold < MinThreshold). El agregador rechaza el lote
// completo en lugar de normalizar en silencio.
type InvalidRecordError struct {
	SKU   string
	Field string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("registro inválido (sku=%s): campo %s", e.SKU, e.Field)
}

// BuildReport construye el reporte completo a partir de los registros.
// Validación al frente, agregación en una sola pasada; todo-o-nada: el primer
// registro inválido aborta sin resultado parcial. Input vacío no es error.
func BuildReport(records []ProductStockRecord) (*Result, error) {
	if err := validate(records); err != nil {
		return nil, err
	}

	items := make([]ReportItem, 0, len(records))
	lowStock := make([]ReportItem, 0)
	critical := make([]ReportItem, 0)

	sumPct := decimal.Zero
	below50 := 0
	inventoryValue := decimal.Zero
	hasAllPrices := true

	for _, r := range records {
		item := ReportItem{
			Name:          r.Name,
			SKU:           r.SKU,
			CurrentStock:  r.CurrentStock,
			MinThreshold:  r.MinThreshold,
			MaxThreshold:  r.MaxThreshold,
			StockLevelPct: stockLevelPct(r),
			Status:        classify(r),
		}
		items = append(items, item)

		sumPct = sumPct.Add(item.StockLevelPct)
		if item.StockLevelPct.LessThan(fifty) {
			below50++
		}
		if item.Status != StatusNormal {
			lowStock = append(lowStock, item)
		}
		if item.Status == StatusOutOfStock {
			critical = append(critical, item)
		}
		if r.UnitPrice == nil {
			hasAllPrices = false
		} else if hasAllPrices {
			inventoryValue = inventoryValue.Add(r.UnitPrice.Mul(decimal.NewFromInt(int64(r.CurrentStock))))
		}
	}

	summary := Summary{
		TotalProducts:      len(items),
		LowStockCount:      len(lowStock),
		CriticalItemsCount: len(critical),
		ItemsBelow50Pct:    below50,
		AvgStockLevel:      decimal.Zero,
	}
	if len(items) > 0 {
		summary.AvgStockLevel = sumPct.Div(decimal.NewFromInt(int64(len(items)))).Round(2)
	}
	if hasAllPrices && len(items) > 0 {
		v := inventoryValue.Round(2)
		summary.TotalInventoryValue = &v
	}

	return &Result{
		Report:        items,
		LowStockItems: sortAndCap(lowStock),
		CriticalItems: sortAndCap(critical),
		Summary:       summary,
	}, nil
}

// classify deriva el estado: 0 → out_of_stock; (0, min] → low_stock; resto normal.
func classify(r ProductStockRecord) StockStatus {
	switch {
	case r.CurrentStock == 0:
		return StatusOutOfStock
	case r.CurrentStock <= r.MinThreshold:
		return StatusLowStock
	default:
		return StatusNormal
	}
}

// stockLevelPct calcula CurrentStock/MaxThreshold*100 con guarda de división
// por cero: MaxThreshold == 0 define el porcentaje como 0.
func stockLevelPct(r ProductStockRecord) decimal.Decimal {
	if r.MaxThreshold == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(r.CurrentStock)).
		Div(decimal.NewFromInt(int64(r.MaxThreshold))).
		Mul(hundred).
		Round(2)
}

// sortAndCap ordena ascendente por StockLevelPct (estable: empates conservan el
// orden de entrada) y recorta a alertListLimit entradas.
func sortAndCap(items []ReportItem) []ReportItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StockLevelPct.LessThan(items[j].StockLevelPct)
	})
	if len(items) > alertListLimit {
		items = items[:alertListLimit]
	}
	return items
}

func validate(records []ProductStockRecord) error {
	for _, r := range records {
		switch {
		case r.CurrentStock < 0:
			return &InvalidRecordError{SKU: r.SKU, Field: "current_stock"}
		case r.MinThreshold < 0:
			return &InvalidRecordError{SKU: r.SKU, Field: "min_threshold"}
		case r.MaxThreshold < 0:
			return &InvalidRecordError{SKU: r.SKU, Field: "max_threshold"}
		case r.MaxThreshold < r.MinThreshold:
			return &InvalidRecordError{SKU: r.SKU, Field: "max_threshold"}
		case r.UnitPrice != nil && r.UnitPrice.IsNegative():
			return &InvalidRecordError{SKU: r.SKU, Field: "unit_price"}
		}
	}
	return nil
}
