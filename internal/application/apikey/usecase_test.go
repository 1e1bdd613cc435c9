package apikey

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
)

// memKeyRepo fake en memoria del puerto APIKeyRepository.
type memKeyRepo struct {
	byID map[string]*entity.APIKey
}

func newMemKeyRepo() *memKeyRepo {
	return &memKeyRepo{byID: make(map[string]*entity.APIKey)}
}

func (m *memKeyRepo) Create(k *entity.APIKey) error {
	cp := *k
	m.byID[k.ID] = &cp
	return nil
}

func (m *memKeyRepo) GetByHashedKey(hash string) (*entity.APIKey, error) {
	for _, k := range m.byID {
		if k.HashedKey == hash {
			cp := *k
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memKeyRepo) GetByAppID(appID string) (*entity.APIKey, error) {
	for _, k := range m.byID {
		if k.AppID == appID && k.IsActive {
			cp := *k
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memKeyRepo) Deactivate(id string) error {
	if k, ok := m.byID[id]; ok {
		k.IsActive = false
	}
	return nil
}

func (m *memKeyRepo) TouchUsage(id string) error {
	if k, ok := m.byID[id]; ok {
		k.UsageCount++
		now := time.Now()
		k.LastUsed = &now
	}
	return nil
}

// memCounter contador en memoria por key, sin ventanas reales.
type memCounter struct {
	counts map[string]int64
	err    error
}

func newMemCounter() *memCounter { return &memCounter{counts: make(map[string]int64)} }

func (c *memCounter) Incr(_ context.Context, keyID string, _ time.Time) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.counts[keyID]++
	return c.counts[keyID], nil
}

func TestAPIKeyCreate_EntregaElSecretoUnaVez(t *testing.T) {
	uc := NewUseCase(newMemKeyRepo(), newMemCounter())

	out, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Key, "la creación devuelve el secreto en claro")
	assert.True(t, out.IsActive)
	assert.Equal(t, DefaultRateLimit, out.RateLimit)
}

func TestAPIKeyCreate_AppIDDuplicado(t *testing.T) {
	uc := NewUseCase(newMemKeyRepo(), newMemCounter())

	_, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app"})
	require.NoError(t, err)

	_, err = uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"un app_id con key activa no puede emitir otra")
}

func TestAPIKeyAuthenticate_SecretoValido(t *testing.T) {
	repo := newMemKeyRepo()
	uc := NewUseCase(repo, newMemCounter())
	created, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app"})
	require.NoError(t, err)

	key, err := uc.Authenticate(context.Background(), created.Key)
	require.NoError(t, err)
	assert.Equal(t, "mobile-app", key.AppID)

	stored := repo.byID[key.ID]
	assert.Equal(t, int64(1), stored.UsageCount, "cada autenticación cuenta como uso")
	assert.NotNil(t, stored.LastUsed)
}

func TestAPIKeyAuthenticate_SecretoInvalido(t *testing.T) {
	uc := NewUseCase(newMemKeyRepo(), newMemCounter())

	_, err := uc.Authenticate(context.Background(), "secreto-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAPIKeyAuthenticate_KeyRevocada(t *testing.T) {
	repo := newMemKeyRepo()
	uc := NewUseCase(repo, newMemCounter())
	created, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app"})
	require.NoError(t, err)

	require.NoError(t, repo.Deactivate(created.ID))

	_, err = uc.Authenticate(context.Background(), created.Key)
	assert.ErrorIs(t, err, domain.ErrKeyInactive)
}

func TestAPIKeyAuthenticate_LimiteHorario(t *testing.T) {
	uc := NewUseCase(newMemKeyRepo(), newMemCounter())
	created, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app", RateLimit: 3})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := uc.Authenticate(context.Background(), created.Key)
		require.NoError(t, err, "petición %d dentro del límite", i+1)
	}

	_, err = uc.Authenticate(context.Background(), created.Key)
	assert.ErrorIs(t, err, domain.ErrRateLimited, "la cuarta petición supera el límite de 3/hora")
}

func TestAPIKeyAuthenticate_ContadorCaidoNoBloquea(t *testing.T) {
	counter := newMemCounter()
	counter.err = fmt.Errorf("redis: connection refused")
	uc := NewUseCase(newMemKeyRepo(), counter)
	created, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app"})
	require.NoError(t, err)

	_, err = uc.Authenticate(context.Background(), created.Key)
	assert.NoError(t, err, "con el contador caído la API sigue atendiendo")
}

func TestAPIKeyRegenerate_RevocaYConservaLimite(t *testing.T) {
	repo := newMemKeyRepo()
	uc := NewUseCase(repo, newMemCounter())
	created, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app", RateLimit: 42})
	require.NoError(t, err)

	renewed, err := uc.Regenerate("owner-1", "mobile-app")
	require.NoError(t, err)

	assert.NotEqual(t, created.Key, renewed.Key, "la key regenerada tiene un secreto nuevo")
	assert.Equal(t, 42, renewed.RateLimit, "el límite se hereda")

	_, err = uc.Authenticate(context.Background(), created.Key)
	assert.ErrorIs(t, err, domain.ErrKeyInactive, "el secreto anterior queda revocado")
}

func TestAPIKeyRegenerate_OtroOwner(t *testing.T) {
	uc := NewUseCase(newMemKeyRepo(), newMemCounter())
	_, err := uc.Create("owner-1", dto.CreateAPIKeyRequest{AppID: "mobile-app"})
	require.NoError(t, err)

	_, err = uc.Regenerate("owner-2", "mobile-app")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
