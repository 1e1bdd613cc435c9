package repository

import "github.com/inventorywise/api/internal/domain/entity"

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// ListByRoles devuelve los usuarios activos con alguno de los roles
	// indicados; lo usa el reporte de stock para resolver destinatarios.
	ListByRoles(roles ...string) ([]*entity.User, error)
}
