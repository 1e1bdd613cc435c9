// Package redis implementa el contador de rate limit de las api keys sobre
// Redis, con una clave por key y ventana horaria.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/inventorywise/api/internal/application/apikey"
	"github.com/inventorywise/api/pkg/config"
)

var _ apikey.RateCounter = (*RateCounter)(nil)

// keyTTL vida de la clave de una ventana; holgura sobre la hora para ventanas solapadas.
const keyTTL = 2 * time.Hour

// RateCounter implementa apikey.RateCounter sobre Redis.
type RateCounter struct {
	client *goredis.Client
}

// NewClient construye el cliente Redis desde la configuración.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRateCounter construye el contador con un cliente ya conectado.
func NewRateCounter(client *goredis.Client) *RateCounter {
	return &RateCounter{client: client}
}

// Incr incrementa el contador de la key en la ventana horaria de window y
// devuelve el valor resultante. La clave expira sola al cerrar la ventana.
func (c *RateCounter) Incr(ctx context.Context, keyID string, window time.Time) (int64, error) {
	key := fmt.Sprintf("ratelimit:apikey:%s:%s", keyID, window.UTC().Format("2006010215"))

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis: incrementar contador: %w", err)
	}
	return incr.Val(), nil
}
