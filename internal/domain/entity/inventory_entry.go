package entity

import "time"

// InventoryEntry asiento del libro de inventario de un producto: acumulados de
// entradas y salidas más el stock resultante. Se crea junto con el producto y
// se actualiza con cada ajuste de stock.
type InventoryEntry struct {
	ID           string
	ProductID    string
	StockIn      int
	StockOut     int
	CurrentStock int
	UpdatedAt    time.Time
}

// ApplyStockIn registra una entrada de mercancía y recalcula el stock.
func (e *InventoryEntry) ApplyStockIn(qty int) {
	e.StockIn += qty
	e.recalc()
}

// CloseOut marca la salida total del stock (baja del producto).
func (e *InventoryEntry) CloseOut() {
	e.StockOut = e.StockIn
	e.recalc()
}

func (e *InventoryEntry) recalc() {
	e.CurrentStock = e.StockIn - e.StockOut
	if e.CurrentStock < 0 {
		e.CurrentStock = 0
	}
}
