package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, price, stock_quantity, min_stock_threshold, max_stock_threshold, category_id, barcode, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, product.Price,
		product.StockQuantity, product.MinStockThreshold, product.MaxStockThreshold,
		product.CategoryID, product.Barcode, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

// Update actualiza un producto. El stock no se toca aquí: los ajustes pasan por UpdateStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, min_stock_threshold = $5,
		    max_stock_threshold = $6, category_id = $7, barcode = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.MinStockThreshold, product.MaxStockThreshold,
		product.CategoryID, product.Barcode, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock vigente del producto.
func (r *ProductRepo) UpdateStock(productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con filtros opcionales y paginación; devuelve además el total sin paginar.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Name != "" {
		conds = append(conds, "p.name ILIKE "+arg("%"+filter.Name+"%"))
	}
	if filter.Category != "" {
		conds = append(conds, "c.name ILIKE "+arg("%"+filter.Category+"%"))
	}
	if filter.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(*filter.MaxPrice))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT count(*) FROM products p LEFT JOIN categories c ON c.id = p.category_id` + where
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT p.id, p.sku, p.name, p.description, p.price, p.stock_quantity,
		       p.min_stock_threshold, p.max_stock_threshold, p.category_id, p.barcode,
		       p.created_at, p.updated_at
		FROM products p LEFT JOIN categories c ON c.id = p.category_id` + where + `
		ORDER BY p.created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, rows.Err()
}

// ListAll devuelve todos los productos. Lo usa el reporte de stock.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	list, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.MinStockThreshold, &p.MaxStockThreshold, &p.CategoryID, &p.Barcode,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
			&p.MinStockThreshold, &p.MaxStockThreshold, &p.CategoryID, &p.Barcode,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, nil
}
