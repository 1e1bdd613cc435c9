package entity

import "time"

// Roles de usuario. Solo se usan para seleccionar los destinatarios del
// reporte de stock; no hay control de acceso por rol en las rutas.
const (
	RoleAdmin        = "admin"
	RoleStockManager = "stock_manager"
	RoleStaff        = "staff"
)

// User usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
