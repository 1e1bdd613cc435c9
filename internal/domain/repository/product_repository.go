package repository

import (
	"github.com/shopspring/decimal"

	"github.com/inventorywise/api/internal/domain/entity"
)

// ProductFilter criterios de listado: nombre y categoría por coincidencia
// parcial (case-insensitive), rango de precio inclusive.
type ProductFilter struct {
	Name     string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, quantity int) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	ListAll() ([]*entity.Product, error)
	Delete(id string) error
}
