package entity

import "time"

// Company representa una empresa operadora/tenant del sistema.
// Cada libro de asignaciones pertenece exclusivamente a una Company.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
