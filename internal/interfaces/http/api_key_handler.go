package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventorywise/api/internal/application/apikey"
	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
)

// APIKeyHandler maneja la emisión y regeneración de api keys (protegido con JWT).
type APIKeyHandler struct {
	uc *apikey.UseCase
}

// NewAPIKeyHandler construye el handler.
func NewAPIKeyHandler(uc *apikey.UseCase) *APIKeyHandler {
	return &APIKeyHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir api key
// @Description  El secreto en claro solo viaja en esta respuesta; después es irrecuperable.
// @Tags         api-keys
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAPIKeyRequest  true  "Datos de la key"
// @Success      201   {object}  dto.APIKeyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/api-keys [post]
func (h *APIKeyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAPIKeyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "app_id es requerido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una key activa para ese app_id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Regenerate godoc
// @Summary      Regenerar api key
// @Description  Revoca la key vigente del app_id y emite una nueva con el mismo límite.
// @Tags         api-keys
// @Security     Bearer
// @Produce      json
// @Param        app_id  path  string  true  "App ID"
// @Success      201     {object}  dto.APIKeyResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/api-keys/{app_id}/regenerate [post]
func (h *APIKeyHandler) Regenerate(c *fiber.Ctx) error {
	appID := c.Params("app_id")
	if appID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "app_id es requerido"})
	}
	out, err := h.uc.Regenerate(GetUserID(c), appID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no existe una key para ese app_id"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la key pertenece a otro usuario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
