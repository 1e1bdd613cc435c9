package entity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"
)

// APIKey credencial de máquina para la API. El secreto se entrega una sola vez
// al crearla; en la base solo se guarda su hash SHA-256.
type APIKey struct {
	ID         string
	AppID      string // identificador de la aplicación cliente, único
	OwnerID    string
	HashedKey  string
	IsActive   bool
	RateLimit  int // peticiones por hora
	UsageCount int64
	LastUsed   *time.Time
	CreatedAt  time.Time
}

// GenerateSecret produce el secreto opaco de la key: 32 bytes aleatorios en
// base64url sin padding.
func GenerateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashSecret calcula el hash SHA-256 (hex) con el que se persiste el secreto.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
