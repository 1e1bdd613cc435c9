package entity

import "time"

// Category categoría de productos; ParentCategoryID permite anidamiento.
type Category struct {
	ID               string
	Name             string
	ParentCategoryID *string
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
