package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos por la aplicación.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role viaja en el token para que el reporte pueda resolver destinatarios sin
// consultar la DB en cada request.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // access | refresh
}

// Generate genera el access token firmado (HS256) con userID y role.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	return sign(secret, userID, role, issuer, TypeAccess, time.Duration(expMinutes)*time.Minute)
}

// GenerateRefresh genera el refresh token, con expiración en días.
func GenerateRefresh(secret, userID, role, issuer string, expDays int) (string, error) {
	return sign(secret, userID, role, issuer, TypeRefresh, time.Duration(expDays)*24*time.Hour)
}

func sign(secret, userID, role, issuer, tokenType string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseRefresh valida que el token sea específicamente un refresh token.
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeRefresh {
		return nil, fmt.Errorf("no es un refresh token")
	}
	return claims, nil
}
