package repository

import "github.com/inventorywise/api/internal/domain/entity"

// InventoryRepository puerto de persistencia para el libro de inventario.
type InventoryRepository interface {
	Create(entry *entity.InventoryEntry) error
	GetByProductID(productID string) (*entity.InventoryEntry, error)
	Update(entry *entity.InventoryEntry) error
}
