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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, name, role, status, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.q.QueryRow(context.Background(), query, id), "get user")
}

// FindByEmail obtiene un usuario por email; nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.q.QueryRow(context.Background(), query, email), "find user by email")
}

// ListByRoles devuelve los usuarios activos con alguno de los roles indicados.
func (r *UserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE status = 'active' AND role = ANY($1) ORDER BY email ASC`
	rows, err := r.q.Query(context.Background(), query, roles)
	if err != nil {
		return nil, fmt.Errorf("list users by roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
