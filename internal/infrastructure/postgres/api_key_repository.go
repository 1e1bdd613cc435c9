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

var _ repository.APIKeyRepository = (*APIKeyRepo)(nil)

const apiKeyColumns = `id, app_id, owner_id, hashed_key, is_active, rate_limit, usage_count, last_used, created_at`

// APIKeyRepo implementación del puerto APIKeyRepository sobre PostgreSQL.
type APIKeyRepo struct {
	q Querier
}

// NewAPIKeyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAPIKeyRepository(q Querier) *APIKeyRepo {
	return &APIKeyRepo{q: q}
}

// Create persiste una nueva api key (solo el hash del secreto).
func (r *APIKeyRepo) Create(key *entity.APIKey) error {
	query := `
		INSERT INTO api_keys (` + apiKeyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		key.ID, key.AppID, key.OwnerID, key.HashedKey, key.IsActive,
		key.RateLimit, key.UsageCount, key.LastUsed, key.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// GetByHashedKey busca una key por el hash del secreto; nil si no existe.
func (r *APIKeyRepo) GetByHashedKey(hashedKey string) (*entity.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE hashed_key = $1`
	return scanAPIKey(r.q.QueryRow(context.Background(), query, hashedKey), "get api key by hash")
}

// GetByAppID busca la key activa de una aplicación; nil si no existe.
func (r *APIKeyRepo) GetByAppID(appID string) (*entity.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE app_id = $1 AND is_active = true`
	return scanAPIKey(r.q.QueryRow(context.Background(), query, appID), "get api key by app")
}

// Deactivate revoca una key.
func (r *APIKeyRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE api_keys SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate api key: %w", err)
	}
	return nil
}

// TouchUsage incrementa el contador de uso y actualiza last_used.
func (r *APIKeyRepo) TouchUsage(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE api_keys SET usage_count = usage_count + 1, last_used = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch api key usage: %w", err)
	}
	return nil
}

func scanAPIKey(row pgx.Row, op string) (*entity.APIKey, error) {
	var k entity.APIKey
	err := row.Scan(
		&k.ID, &k.AppID, &k.OwnerID, &k.HashedKey, &k.IsActive,
		&k.RateLimit, &k.UsageCount, &k.LastUsed, &k.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &k, nil
}
