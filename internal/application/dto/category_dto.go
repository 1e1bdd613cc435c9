package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name             string  `json:"name"`
	ParentCategoryID *string `json:"parent_category_id"`
	Description      string  `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	ParentCategoryID *string `json:"parent_category_id"`
	Description      *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ParentCategoryID *string   `json:"parent_category_id,omitempty"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
