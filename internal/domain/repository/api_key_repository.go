package repository

import "github.com/inventorywise/api/internal/domain/entity"

// APIKeyRepository puerto de persistencia para APIKey.
type APIKeyRepository interface {
	Create(key *entity.APIKey) error
	GetByHashedKey(hashedKey string) (*entity.APIKey, error)
	GetByAppID(appID string) (*entity.APIKey, error)
	Deactivate(id string) error
	// TouchUsage incrementa el contador de uso y actualiza last_used.
	TouchUsage(id string) error
}
