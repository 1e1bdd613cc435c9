package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El SKU se genera en el
// servidor a partir del nombre y la categoría; Category es el nombre de una
// categoría existente.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	StockQuantity     int             `json:"stock_quantity"`
	MinStockThreshold int             `json:"min_stock_threshold"`
	MaxStockThreshold int             `json:"max_stock_threshold"`
	Category          string          `json:"category"`
	Barcode           string          `json:"barcode"`
}

// UpdateProductRequest entrada para actualizar un producto (PUT, campos opcionales).
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	MinStockThreshold *int             `json:"min_stock_threshold"`
	MaxStockThreshold *int             `json:"max_stock_threshold"`
	Category          *string          `json:"category"`
	Barcode           *string          `json:"barcode"`
}

// AdjustStockRequest entrada del PATCH de stock: la cantidad se SUMA al stock
// vigente (llegada de mercancía), no lo reemplaza.
type AdjustStockRequest struct {
	StockQuantity int `json:"stock_quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	StockQuantity     int             `json:"stock_quantity"`
	MinStockThreshold int             `json:"min_stock_threshold"`
	MaxStockThreshold int             `json:"max_stock_threshold"`
	CategoryID        string          `json:"category_id"`
	Barcode           string          `json:"barcode,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductFilterRequest filtros de listado (query params).
type ProductFilterRequest struct {
	Name     string           `query:"name"`
	Category string           `query:"category"`
	MinPrice *decimal.Decimal `query:"min_price"`
	MaxPrice *decimal.Decimal `query:"max_price"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
