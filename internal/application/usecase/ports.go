package usecase

import (
	"context"

	"github.com/inventorywise/api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo usan los casos de uso que tocan el producto y su asiento de inventario a
// la vez, para que ambos queden consistentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
