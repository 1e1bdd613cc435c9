package dto

import "time"

// CreateAPIKeyRequest entrada para emitir una api key.
type CreateAPIKeyRequest struct {
	AppID     string `json:"app_id"`
	RateLimit int    `json:"rate_limit"` // peticiones/hora; 0 usa el valor por defecto
}

// APIKeyResponse salida de una api key. Key (el secreto en claro) solo viene
// poblado en la respuesta de creación o regeneración; después es irrecuperable.
type APIKeyResponse struct {
	ID         string     `json:"id"`
	AppID      string     `json:"app_id"`
	Key        string     `json:"key,omitempty"`
	IsActive   bool       `json:"is_active"`
	RateLimit  int        `json:"rate_limit"`
	UsageCount int64      `json:"usage_count"`
	LastUsed   *time.Time `json:"last_used,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
