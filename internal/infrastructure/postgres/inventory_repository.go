package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste el asiento de inventario de un producto.
func (r *InventoryRepo) Create(entry *entity.InventoryEntry) error {
	query := `
		INSERT INTO inventories (id, product_id, stock_in, stock_out, current_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.StockIn, entry.StockOut, entry.CurrentStock, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory entry: %w", err)
	}
	return nil
}

// GetByProductID obtiene el asiento de un producto; nil si no existe.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.InventoryEntry, error) {
	query := `
		SELECT id, product_id, stock_in, stock_out, current_stock, updated_at
		FROM inventories WHERE product_id = $1`
	var e entity.InventoryEntry
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&e.ID, &e.ProductID, &e.StockIn, &e.StockOut, &e.CurrentStock, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory entry: %w", err)
	}
	return &e, nil
}

// Update actualiza los acumulados del asiento.
func (r *InventoryRepo) Update(entry *entity.InventoryEntry) error {
	query := `
		UPDATE inventories
		SET stock_in = $2, stock_out = $3, current_stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.StockIn, entry.StockOut, entry.CurrentStock, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory entry: %w", err)
	}
	return nil
}
