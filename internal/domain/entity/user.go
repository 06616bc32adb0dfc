package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// User representa un operador del sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string // ADMIN | MANAGER | STAFF
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
