package dto

import "time"

// InventoryEntryResponse asiento de inventario de un producto.
type InventoryEntryResponse struct {
	ProductID    string    `json:"product_id"`
	StockIn      int       `json:"stock_in"`
	StockOut     int       `json:"stock_out"`
	CurrentStock int       `json:"current_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}
