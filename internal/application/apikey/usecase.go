// Package apikey maneja las credenciales de máquina: emisión, regeneración y
// autenticación con límite de peticiones por hora.
package apikey

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
)

// DefaultRateLimit peticiones/hora cuando la key no especifica uno.
const DefaultRateLimit = 100

// RateCounter puerto del contador de peticiones por ventana horaria
// (implementado sobre Redis).
type RateCounter interface {
	// Incr incrementa el contador de la key en la ventana horaria vigente y
	// devuelve el valor resultante.
	Incr(ctx context.Context, keyID string, window time.Time) (int64, error)
}

// UseCase casos de uso de api keys.
type UseCase struct {
	repo    repository.APIKeyRepository
	counter RateCounter
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.APIKeyRepository, counter RateCounter) *UseCase {
	return &UseCase{repo: repo, counter: counter}
}

// Create emite una nueva api key para el app_id indicado. El secreto en claro
// viaja solo en esta respuesta.
func (uc *UseCase) Create(ownerID string, in dto.CreateAPIKeyRequest) (*dto.APIKeyResponse, error) {
	if in.AppID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByAppID(in.AppID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsActive {
		return nil, domain.ErrDuplicate
	}
	return uc.issue(ownerID, in.AppID, in.RateLimit)
}

// Regenerate desactiva la key vigente del app_id y emite una nueva con el
// mismo límite de peticiones.
func (uc *UseCase) Regenerate(ownerID, appID string) (*dto.APIKeyResponse, error) {
	current, err := uc.repo.GetByAppID(appID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if current.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if err := uc.repo.Deactivate(current.ID); err != nil {
		return nil, err
	}
	return uc.issue(ownerID, appID, current.RateLimit)
}

// Authenticate valida un secreto de api key: existencia, estado activo y
// límite horario. Si pasa, incrementa el contador de uso.
func (uc *UseCase) Authenticate(ctx context.Context, secret string) (*entity.APIKey, error) {
	key, err := uc.repo.GetByHashedKey(entity.HashSecret(secret))
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, domain.ErrUnauthorized
	}
	if !key.IsActive {
		return nil, domain.ErrKeyInactive
	}

	count, err := uc.counter.Incr(ctx, key.ID, time.Now())
	if err != nil {
		// El contador caído no debe tumbar la API: se permite el paso y se
		// deja el incidente en manos del caller (log).
		count = 0
	}
	limit := key.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if count > int64(limit) {
		return nil, domain.ErrRateLimited
	}

	if err := uc.repo.TouchUsage(key.ID); err != nil {
		return nil, err
	}
	return key, nil
}

func (uc *UseCase) issue(ownerID, appID string, rateLimit int) (*dto.APIKeyResponse, error) {
	secret, err := entity.GenerateSecret()
	if err != nil {
		return nil, err
	}
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	key := &entity.APIKey{
		ID:        uuid.New().String(),
		AppID:     appID,
		OwnerID:   ownerID,
		HashedKey: entity.HashSecret(secret),
		IsActive:  true,
		RateLimit: rateLimit,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(key); err != nil {
		return nil, err
	}
	return &dto.APIKeyResponse{
		ID:        key.ID,
		AppID:     key.AppID,
		Key:       secret,
		IsActive:  key.IsActive,
		RateLimit: key.RateLimit,
		CreatedAt: key.CreatedAt,
	}, nil
}
