package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventorywise/api/internal/application/apikey"
	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
)

// HeaderAPIKey header con el secreto de la api key.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware autentica peticiones de máquina con X-API-Key: valida el
// secreto, el estado de la key y su límite horario de peticiones.
func APIKeyMiddleware(uc *apikey.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := c.Get(HeaderAPIKey)
		if secret == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_API_KEY", Message: "header X-API-Key requerido"})
		}
		key, err := uc.Authenticate(c.UserContext(), secret)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_API_KEY", Message: "api key inválida"})
			case errors.Is(err, domain.ErrKeyInactive):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INACTIVE_API_KEY", Message: "api key revocada"})
			case errors.Is(err, domain.ErrRateLimited):
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "límite de peticiones por hora alcanzado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalUserID, key.OwnerID)
		return c.Next()
	}
}
