package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, parent_category_id, description, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.ParentCategoryID, category.Description,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return scanCategory(r.q.QueryRow(context.Background(), query, id), "get category")
}

// GetByName obtiene una categoría por nombre exacto; nil si no existe.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	return scanCategory(r.q.QueryRow(context.Background(), query, name), "get category by name")
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, parent_category_id = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.ParentCategoryID, category.Description,
		category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías con filtro opcional por nombre (parcial) y paginación.
func (r *CategoryRepo) List(name string, limit, offset int) ([]*entity.Category, int, error) {
	where := ""
	args := []any{}
	if name != "" {
		where = " WHERE name ILIKE $1"
		args = append(args, "%"+name+"%")
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT `+categoryColumns+` FROM categories`+where+` ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentCategoryID, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// DeleteAll elimina todas las categorías.
func (r *CategoryRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories`)
	if err != nil {
		return fmt.Errorf("delete all categories: %w", err)
	}
	return nil
}

func scanCategory(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.ParentCategoryID, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
