package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "Administrador"
	RoleEmployee = "Empleado"
)

// Estados válidos para User.
const (
	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Administrador, Empleado
	Status       string // activo, inactivo
	CreatedAt    time.Time
}

// IsActive indica si el usuario puede iniciar sesión.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole indica si el rol es uno de los permitidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// ValidStatus indica si el estado es uno de los permitidos.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
