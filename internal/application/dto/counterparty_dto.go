package dto

import "time"

// CreateCounterpartyRequest alta de contraparte (mantenimiento del directorio).
type CreateCounterpartyRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Role  string `json:"role"` // tenant | lessor
}

// CounterpartyResponse contraparte para listados y selectores.
type CounterpartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
