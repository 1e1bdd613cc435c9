package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// StockQuantity es el stock vigente; MinStockThreshold dispara la alerta de
// stock bajo y MaxStockThreshold es la capacidad nominal usada para calcular
// el porcentaje de nivel de stock en los reportes.
type Product struct {
	ID                string
	SKU               string // único, generado en el alta (ver domain/sku)
	Name              string
	Description       string
	Price             decimal.Decimal // no negativo
	StockQuantity     int             // no negativo
	MinStockThreshold int
	MaxStockThreshold int
	CategoryID        string
	Barcode           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
