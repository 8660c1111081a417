package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operador
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile es el registro de identidad asociado a un usuario (tabla profiles).
// Fuente primaria del resolver de scope y de los nombres de actor en el historial.
type Profile struct {
	UserID      string
	CompanyID   string
	DisplayName string
	Email       string
	UpdatedAt   time.Time
}
