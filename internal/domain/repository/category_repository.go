package repository

import "github.com/inventorywise/api/internal/domain/entity"

// CategoryRepository puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(name string, limit, offset int) ([]*entity.Category, int, error)
	Delete(id string) error
	DeleteAll() error
}
