package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/application/usecase"
	"github.com/inventorywise/api/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una categoría con ese nombre"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría padre no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        name    query  string  false  "Filtro por nombre (parcial)"
// @Param        limit   query  int     false  "Límite"   default(10)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.List(c.Query("name"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores inválidos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una categoría con ese nombre"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría padre no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAll godoc
// @Summary      Eliminar todas las categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      204  "Sin contenido"
// @Router       /api/categories [delete]
func (h *CategoryHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.uc.DeleteAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
